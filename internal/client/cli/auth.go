package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dialkeeper/internal/client/session"
	"github.com/spf13/pflag"
)

// promptIfEmpty asks for *v on the terminal when the flag was not given.
func (a *App) promptIfEmpty(v *string, prompt string) error {
	if *v != "" {
		return nil
	}
	s, err := GetSimpleText(a.in, prompt, a.stdout)
	if err != nil {
		return fmt.Errorf("read %s: %w", prompt, err)
	}
	*v = s
	return nil
}

func (a *App) readAngles(raw string) ([]float64, error) {
	if err := a.promptIfEmpty(&raw, "Enter dial angles (outer,middle,inner)"); err != nil {
		return nil, err
	}
	angles, err := ParseAngles(raw)
	if err != nil {
		return nil, usagef("%v", err)
	}
	return angles, nil
}

func (a *App) registerCommand() *command {
	var name, email, rawAngles string

	return &command{
		name:    "register",
		summary: "Create an account",
		usage:   "register [--name NAME] [--email EMAIL] [--angles A,B,C]",
		flags: func(fs *pflag.FlagSet) {
			fs.StringVar(&name, "name", "", "display name")
			fs.StringVar(&email, "email", "", "account email")
			fs.StringVar(&rawAngles, "angles", "", "outer,middle,inner dial angles in degrees")
		},
		run: func(ctx context.Context, args []string) error {
			if len(args) != 0 {
				return usagef("unexpected arguments %v", args)
			}
			if err := a.promptIfEmpty(&name, "Enter name"); err != nil {
				return err
			}
			if err := a.promptIfEmpty(&email, "Enter email"); err != nil {
				return err
			}
			angles, err := a.readAngles(rawAngles)
			if err != nil {
				return err
			}

			c, err := a.dial()
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := a.withTimeout(ctx)
			defer cancel()

			id, err := c.Register(ctx, name, email, angles)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Registered %s (id %s)\n", email, id)
			return nil
		},
	}
}

func (a *App) loginCommand() *command {
	var email, rawAngles string

	return &command{
		name:    "login",
		summary: "Authenticate and save the session",
		usage:   "login [--email EMAIL] [--angles A,B,C]",
		flags: func(fs *pflag.FlagSet) {
			fs.StringVar(&email, "email", "", "account email")
			fs.StringVar(&rawAngles, "angles", "", "outer,middle,inner dial angles in degrees")
		},
		run: func(ctx context.Context, args []string) error {
			if len(args) != 0 {
				return usagef("unexpected arguments %v", args)
			}
			if err := a.promptIfEmpty(&email, "Enter email"); err != nil {
				return err
			}
			angles, err := a.readAngles(rawAngles)
			if err != nil {
				return err
			}

			c, err := a.dial()
			if err != nil {
				return err
			}
			defer c.Close()

			callCtx, cancel := a.withTimeout(ctx)
			defer cancel()

			user, token, err := c.Login(callCtx, email, angles)
			if err != nil {
				return err
			}

			store, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			sess := session.Session{Token: token, Email: email, Server: a.cfg.ServerEndpointAddr}
			if err := store.Save(ctx, sess); err != nil {
				return err
			}

			if user != nil {
				fmt.Fprintf(a.stdout, "Logged in as %s <%s>\n", user.Name, user.Email)
			} else {
				fmt.Fprintf(a.stdout, "Logged in as %s\n", email)
			}
			return nil
		},
	}
}

func (a *App) logoutCommand() *command {
	return &command{
		name:    "logout",
		summary: "Forget the saved session",
		usage:   "logout",
		run: func(ctx context.Context, args []string) error {
			store, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, "Logged out")
			return nil
		},
	}
}
