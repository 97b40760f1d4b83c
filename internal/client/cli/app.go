package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/client/client"
	"github.com/dmitrijs2005/dialkeeper/internal/client/config"
	"github.com/dmitrijs2005/dialkeeper/internal/client/session"
	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// App runs a single CLI invocation.
type App struct {
	in      *bufio.Reader
	stdinFd int
	stdout  io.Writer
	stderr  io.Writer

	// dialOpts are appended to the client's dial options.
	dialOpts []grpc.DialOption

	cfg *config.Config
}

// NewApp returns an App reading from stdin and writing to stdout/stderr.
func NewApp(stdin *os.File, stdout, stderr io.Writer) *App {
	return &App{
		in:      bufio.NewReader(stdin),
		stdinFd: int(stdin.Fd()),
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Run parses global flags, loads configuration and dispatches args to a
// subcommand. It returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	global := pflag.NewFlagSet("dialkeeper", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(io.Discard)

	configFile := global.StringP("config", "c", "", "path to a JSON or YAML config file")
	server := global.StringP("server", "a", "", "server address (host:port)")
	token := global.String("token", "", "access token, overrides the saved session")
	timeout := global.Duration("timeout", 0, "per-call timeout")
	sessionFile := global.String("session", "", "session database path")
	help := global.BoolP("help", "h", false, "show help")

	if err := global.Parse(args); err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n\n", err)
		a.printUsage(a.stderr, global)
		return ExitUsage
	}
	rest := global.Args()
	if *help || len(rest) == 0 {
		a.printUsage(a.stdout, global)
		if *help {
			return ExitOK
		}
		return ExitUsage
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return ExitError
	}
	if global.Changed("server") {
		cfg.ServerEndpointAddr = *server
	}
	if global.Changed("token") {
		cfg.Token = *token
	}
	if global.Changed("timeout") {
		cfg.Timeout = *timeout
	}
	if global.Changed("session") {
		cfg.SessionFile = *sessionFile
	}
	a.cfg = cfg

	cmd := a.lookup(rest[0])
	if cmd == nil {
		fmt.Fprintf(a.stderr, "error: unknown command %q\n\n", rest[0])
		a.printUsage(a.stderr, global)
		return ExitUsage
	}

	if err := cmd.execute(ctx, rest[1:]); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(a.stderr, "error: %v\nusage: dialkeeper %s\n", err, cmd.usage)
			return ExitUsage
		}
		fmt.Fprintf(a.stderr, "error: %s\n", describe(err))
		return ExitError
	}
	return ExitOK
}

func (a *App) printUsage(w io.Writer, global *pflag.FlagSet) {
	fmt.Fprintln(w, "usage: dialkeeper [global flags] <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range a.commands() {
		fmt.Fprintf(tw, "  %s\t%s\n", c.name, c.summary)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "global flags:")
	fmt.Fprint(w, global.FlagUsages())
}

// describe turns client errors into messages for people.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrTokenExpired):
		return "session expired, run 'dialkeeper login' again"
	case errors.Is(err, common.ErrorUnauthorized):
		return "not logged in, run 'dialkeeper login' first"
	case errors.Is(err, common.ErrAuthFailed):
		return "authentication failed"
	case errors.Is(err, common.ErrDuplicateEmail):
		return "email already registered"
	case errors.Is(err, common.ErrorNotFound):
		return "secret not found"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	default:
		return err.Error()
	}
}

// withTimeout applies the configured per-call deadline.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.Timeout)
}

func (a *App) dial() (*client.GRPCClient, error) {
	return client.NewGRPCClient(a.cfg.ServerEndpointAddr, a.dialOpts...)
}

func (a *App) openSession(ctx context.Context) (*session.Store, error) {
	return session.Open(ctx, a.cfg.SessionFile)
}

// connectAuthorized dials the server with the caller's token: the configured
// one if set, otherwise the one saved by login.
func (a *App) connectAuthorized(ctx context.Context) (*client.GRPCClient, error) {
	token := a.cfg.Token
	if token == "" {
		store, err := a.openSession(ctx)
		if err != nil {
			return nil, err
		}
		sess, err := store.Load(ctx)
		_ = store.Close()
		if err != nil {
			return nil, err
		}
		token = sess.Token
	}
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	c, err := a.dial()
	if err != nil {
		return nil, err
	}
	c.SetToken(token)
	return c, nil
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
