package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dialkeeper/internal/buildinfo"
)

func (a *App) pingCommand() *command {
	return &command{
		name:    "ping",
		summary: "Check that the server is reachable",
		usage:   "ping",
		run: func(ctx context.Context, args []string) error {
			c, err := a.dial()
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := a.withTimeout(ctx)
			defer cancel()

			if err := c.Ping(ctx); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s: OK\n", a.cfg.ServerEndpointAddr)
			return nil
		},
	}
}

func (a *App) versionCommand() *command {
	return &command{
		name:    "version",
		summary: "Print build information",
		usage:   "version",
		run: func(ctx context.Context, args []string) error {
			buildinfo.PrintBuildData(a.stdout)
			return nil
		},
	}
}
