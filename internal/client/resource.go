package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrSuperseded is returned by a fetch whose response was discarded because
// a newer fetch started on the same resource.
var ErrSuperseded = errors.New("request superseded")

// State is a snapshot of a resource.
type State[T any] struct {
	Data    *T
	Loading bool
	Error   string
}

// Resource holds the latest result of fetching one target.
// Safe for concurrent use.
type Resource[T any] struct {
	client *Client

	mu     sync.Mutex
	target string
	config RequestConfig
	state  State[T]
	gen    uint64
}

// NewResource creates a resource for target. An empty target means nothing
// is fetched until one is set.
func NewResource[T any](c *Client, target string, cfg ...RequestConfig) *Resource[T] {
	r := &Resource[T]{client: c, target: target}
	if len(cfg) > 0 {
		r.config = cfg[0]
	}
	return r
}

// State returns a snapshot of the current state.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// SetConfig replaces the request config used by later fetches.
func (r *Resource[T]) SetConfig(cfg RequestConfig) {
	r.mu.Lock()
	r.config = cfg
	r.mu.Unlock()
}

// SetTarget replaces the target and fetches it. An empty target clears the
// state and discards any outstanding response.
func (r *Resource[T]) SetTarget(ctx context.Context, target string) error {
	r.mu.Lock()
	r.target = target
	r.mu.Unlock()
	return r.Fetch(ctx)
}

// Fetch requests the current target.
func (r *Resource[T]) Fetch(ctx context.Context) error {
	return r.Refetch(ctx, "")
}

// Refetch requests override, or the current target when override is empty,
// with the most recently set config. The error is also recorded in State.
func (r *Resource[T]) Refetch(ctx context.Context, override string) error {
	r.mu.Lock()
	target := override
	if target == "" {
		target = r.target
	}
	if target == "" {
		// no target: drop any in-flight response and report the idle state
		r.gen++
		r.state = State[T]{}
		r.mu.Unlock()
		return nil
	}
	r.gen++
	gen := r.gen
	cfg := r.config
	r.state.Loading = true
	r.state.Error = ""
	r.mu.Unlock()

	payload, err := r.client.Do(ctx, target, cfg)
	var data T
	if err == nil {
		if uerr := json.Unmarshal(payload, &data); uerr != nil {
			err = fmt.Errorf("decode response: %w", uerr)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return ErrSuperseded
	}
	r.state.Loading = false
	if err != nil {
		r.state.Error = err.Error()
		return err
	}
	r.state.Data = &data
	return nil
}
