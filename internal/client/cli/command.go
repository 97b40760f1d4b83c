package cli

import (
	"context"
	"io"

	"github.com/spf13/pflag"
)

// command is one subcommand. flags binds its flag set; run receives the
// positional arguments left after parsing.
type command struct {
	name    string
	summary string
	usage   string
	flags   func(fs *pflag.FlagSet)
	run     func(ctx context.Context, args []string) error
}

func (c *command) execute(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if c.flags != nil {
		c.flags(fs)
	}
	if err := fs.Parse(args); err != nil {
		return usagef("%v", err)
	}
	return c.run(ctx, fs.Args())
}

func (a *App) commands() []*command {
	return []*command{
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.secretsCommand(),
		a.addCommand(),
		a.showCommand(),
		a.pingCommand(),
		a.versionCommand(),
	}
}

func (a *App) lookup(name string) *command {
	for _, c := range a.commands() {
		if c.name == name {
			return c
		}
	}
	return nil
}
