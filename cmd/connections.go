package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/dimspell/gladiator-launcher/connstore"
	"github.com/dimspell/gladiator-launcher/model"
)

func cmdConnections(ctx context.Context) *cli.Command {
	return &cli.Command{
		Name:  "connections",
		Usage: "Manage the saved connections of the Home screen",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List saved connections, most recent first",
				Action: func(cCtx *cli.Context) error {
					return withStore(ctx, cCtx, func(store *connstore.Store) error {
						conns, err := store.List()
						if err != nil {
							return err
						}
						return printConnections(cCtx.App.Writer, conns)
					})
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a saved connection",
				ArgsUsage: "<id>",
				Action: func(cCtx *cli.Context) error {
					id := cCtx.Args().First()
					if id == "" {
						return errors.New("connection id is required, see 'connections list'")
					}
					return withStore(ctx, cCtx, func(store *connstore.Store) error {
						if err := store.Delete(id); err != nil {
							return fmt.Errorf("remove %s: %w", id, err)
						}
						_, _ = fmt.Fprintf(cCtx.App.Writer, "removed %s\n", id)
						return nil
					})
				},
			},
		},
	}
}

func withStore(ctx context.Context, cCtx *cli.Context, fn func(store *connstore.Store) error) error {
	cfg := loadConfig(cCtx.Path(flagConfigPath))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := connstore.New(cfg.ConnectionsDir())
	if err := store.Run(ctx); err != nil {
		return err
	}
	defer func() { _ = store.Close(ctx) }()

	return fn(store)
}

func printConnections(w io.Writer, conns []model.SavedConnection) error {
	if len(conns) == 0 {
		_, err := fmt.Fprintln(w, "no saved connections")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tROLE\tADDRESS\tUSERNAME\tLAST USED")
	for _, c := range conns {
		username := c.Username
		if username == "" {
			username = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.ID(), c.Role(), c.Addr, username, c.LastUsed.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
