package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/dialkeeper/internal/common"
	"github.com/spf13/pflag"
)

func (a *App) secretsCommand() *command {
	return &command{
		name:    "secrets",
		summary: "List your secrets, most recently used first",
		usage:   "secrets",
		run: func(ctx context.Context, args []string) error {
			if len(args) != 0 {
				return usagef("unexpected arguments %v", args)
			}

			c, err := a.connectAuthorized(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := a.withTimeout(ctx)
			defer cancel()

			list, err := c.List(ctx)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(a.stdout, "No secrets")
				return nil
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tLAST ACCESSED")
			for _, s := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Title, s.Type, formatMillis(s.LastAccessed))
			}
			return tw.Flush()
		},
	}
}

// readSecretData reads the payload without echo from a terminal, or in full
// from piped stdin. With multiline set it reads lines up to the first empty
// one, echoed, from either source.
func (a *App) readSecretData(multiline bool) (string, error) {
	if multiline {
		return GetMultiline(a.in, "Enter secret", a.stdout)
	}
	if isTerminal(a.stdinFd) {
		b, err := GetPassword(a.stdinFd, "Enter secret: ", a.stdout)
		if err != nil {
			return "", err
		}
		defer common.WipeByteArray(b)
		return string(b), nil
	}
	b, err := io.ReadAll(a.in)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func (a *App) addCommand() *command {
	var (
		title, secretType, data string
		multiline               bool
	)

	return &command{
		name:    "add",
		summary: "Store a new secret",
		usage:   "add --title TITLE [--type TYPE] [--data DATA | --multiline]",
		flags: func(fs *pflag.FlagSet) {
			fs.StringVar(&title, "title", "", "secret title")
			fs.StringVar(&secretType, "type", "note", "secret type, e.g. note or login")
			fs.StringVar(&data, "data", "", "secret payload; read from stdin when omitted")
			fs.BoolVarP(&multiline, "multiline", "m", false, "read several lines from stdin, ending with an empty line")
		},
		run: func(ctx context.Context, args []string) error {
			if len(args) != 0 {
				return usagef("unexpected arguments %v", args)
			}
			if strings.TrimSpace(title) == "" {
				return usagef("--title is required")
			}
			if multiline && data != "" {
				return usagef("--data and --multiline are mutually exclusive")
			}

			c, err := a.connectAuthorized(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			if data == "" {
				if data, err = a.readSecretData(multiline); err != nil {
					return fmt.Errorf("read secret: %w", err)
				}
			}

			ctx, cancel := a.withTimeout(ctx)
			defer cancel()

			id, err := c.Add(ctx, title, secretType, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Added secret %s\n", id)
			return nil
		},
	}
}

func (a *App) showCommand() *command {
	return &command{
		name:    "show",
		summary: "Reveal a secret",
		usage:   "show <id>",
		run: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return usagef("expected exactly one secret id")
			}

			c, err := a.connectAuthorized(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := a.withTimeout(ctx)
			defer cancel()

			s, err := c.Reveal(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "ID:            %s\n", s.ID)
			fmt.Fprintf(a.stdout, "Title:         %s\n", s.Title)
			fmt.Fprintf(a.stdout, "Type:          %s\n", s.Type)
			fmt.Fprintf(a.stdout, "Last accessed: %s\n", formatMillis(s.LastAccessed))
			fmt.Fprintf(a.stdout, "Data:\n%s\n", s.Data)
			return nil
		},
	}
}
