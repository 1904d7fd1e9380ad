package cli

import (
	"fmt"
	"io"
	"os"

	"todo-cli/internal/store"

	"github.com/spf13/cobra"
)

type initPayload struct {
	ConfigPath string `json:"configPath"`
	MainDir    string `json:"mainDir"`
	Created    bool   `json:"created"`
}

func (p initPayload) RenderText(w io.Writer) error {
	state := "already initialized"
	if p.Created {
		state = "initialized"
	}
	_, err := fmt.Fprintf(w, "%s: config %s, lists in %s\n", state, p.ConfigPath, p.MainDir)
	return err
}

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file and main list dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}

			created := false
			if _, err := os.Stat(path); os.IsNotExist(err) {
				cfg, err := store.DefaultConfig()
				if err != nil {
					return writeErr(cmd, err)
				}
				if err := store.SaveConfig(cfg); err != nil {
					return writeErr(cmd, err)
				}
				created = true
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := os.MkdirAll(cfg.MainDir, 0o755); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Debug("init", "config", path, "mainDir", cfg.MainDir, "created", created)

			return writeOut(cmd, app, initPayload{
				ConfigPath: path,
				MainDir:    cfg.MainDir,
				Created:    created,
			})
		},
	}
}
