// Command sosio is a terminal client for the Sosio API. It keeps the
// signed-in member in a session file between invocations.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"sosio/internal/client"
	"sosio/internal/logger"
	"sosio/internal/notify"
	"sosio/internal/session"
)

const usage = `Usage: sosio [-config file] [-v] <command> [flags]

Commands:
  login -email <email> [-password <password>]   sign in and store the session
  logout                                        forget the stored session
  whoami                                        show the signed-in member
  dashboard                                     balance, loans, investments, recent activity
  loans                                         loans with totals
  investments                                   portfolio with total value
  history [-export file.xlsx]                   transaction history, newest first
  health                                        check the server
`

const connectMessage = "Unable to connect to server. Please check your internet connection and try again."

// app carries the dependencies every command uses.
type app struct {
	api    *client.Client
	store  session.Store
	notify notify.Notifier
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sosio", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "Config file (default ~/.sosio.yaml)")
	verbose := fs.Bool("v", false, "Log notifications as structured output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	var notifier notify.Notifier = notify.NewWriter(stderr)
	if *verbose {
		logger.Init("development", "debug")
		notifier = notify.Multi{notifier, notify.NewLog(logger.Named("cli"))}
	} else {
		logger.Init("test")
	}

	a := &app{
		api:    client.New(cfg.APIURL, &http.Client{Timeout: cfg.Timeout}),
		store:  session.NewFileStore(cfg.SessionFile),
		notify: notifier,
		stdin:  stdin,
		stdout: stdout,
	}
	return a.dispatch(ctx, fs.Arg(0), fs.Args()[1:], stderr)
}

func (a *app) dispatch(ctx context.Context, command string, args []string, stderr io.Writer) error {
	switch command {
	case "login":
		return a.login(ctx, args, stderr)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami(ctx)
	case "dashboard":
		return a.dashboard(ctx)
	case "loans":
		return a.loans(ctx)
	case "investments":
		return a.investments(ctx)
	case "history":
		return a.history(ctx, args, stderr)
	case "health":
		return a.health(ctx)
	default:
		fmt.Fprint(stderr, usage)
		err := fmt.Errorf("unknown command: %s", command)
		a.notify.Notify(err.Error(), notify.Error)
		return err
	}
}

// fail reports err to the user and returns it.
func (a *app) fail(err error) error {
	a.notify.Notify(userMessage(err), notify.Error)
	return err
}

// userMessage maps transport failures to a connection hint and everything
// else to the server's message.
func userMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return connectMessage
	}
	return client.UserMessage(err)
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
