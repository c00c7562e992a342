// Package notify delivers short user-facing messages.
package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Kind classifies a notification.
type Kind string

// Notification kinds.
const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// Notifier shows a message to the user.
type Notifier interface {
	Notify(message string, kind Kind)
}

// Func adapts a function to Notifier.
type Func func(message string, kind Kind)

func (f Func) Notify(message string, kind Kind) { f(message, kind) }

var symbols = map[Kind]string{
	Success: "✓",
	Error:   "✖",
	Warning: "!",
	Info:    "i",
}

// Writer prints one line per notification.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Writer printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (n *Writer) Notify(message string, kind Kind) {
	sym, ok := symbols[kind]
	if !ok {
		sym = symbols[Info]
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "%s %s\n", sym, message)
}

// Log sends notifications to a zap logger, errors at error level and
// warnings at warn level.
type Log struct {
	log *zap.SugaredLogger
}

// NewLog returns a Log notifier.
func NewLog(log *zap.SugaredLogger) *Log {
	return &Log{log: log}
}

func (n *Log) Notify(message string, kind Kind) {
	switch kind {
	case Error:
		n.log.Errorw(message, "kind", kind)
	case Warning:
		n.log.Warnw(message, "kind", kind)
	default:
		n.log.Infow(message, "kind", kind)
	}
}

// Entry is one recorded notification.
type Entry struct {
	Message string
	Kind    Kind
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Notify(message string, kind Kind) {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Message: message, Kind: kind})
	r.mu.Unlock()
}

// Entries returns a copy of the recorded notifications.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(message string, kind Kind) {
	for _, n := range m {
		n.Notify(message, kind)
	}
}
