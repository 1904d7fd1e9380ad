package cli

import (
	"fmt"
	"io"

	"todo-cli/internal/format"
	"todo-cli/internal/store"

	"github.com/spf13/cobra"
)

type listsPayload struct {
	Lists []store.ListRef `json:"lists"`
}

func (p listsPayload) RenderText(w io.Writer) error {
	for _, l := range p.Lists {
		if _, err := fmt.Fprintf(w, "%s %s  %s\n", format.GlyphBullet(), l.Name, l.Path); err != nil {
			return err
		}
	}
	return nil
}

func newListsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage the list registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsShow(cmd, app)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show all known lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsShow(cmd, app)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <path>",
		Short: "Register a list that lives outside the main dir",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := cfg.AddList(args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Debug("registered list", "name", args[0], "path", args[1])
			return runListsShow(cmd, app)
		},
	})

	return cmd
}

func runListsShow(cmd *cobra.Command, app *App) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return writeErr(cmd, err)
	}
	lists, err := cfg.ExistingLists()
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, listsPayload{Lists: lists})
}
