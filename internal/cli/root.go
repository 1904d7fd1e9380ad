package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"todo-cli/internal/format"
	"todo-cli/internal/gitrepo"
	"todo-cli/internal/model"
	"todo-cli/internal/store"
	"todo-cli/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type App struct {
	List    string
	Format  string
	Pretty  bool
	Verbose bool

	logger *log.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "Markdown-file todo lists",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive browser for the current list
  todo

  # Scriptable commands
  todo add buy milk #errands
  todo ls --tag errands
  todo done 9 11

  # Work with a named list
  todo --list work add review the release notes
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		app.logger = newLogger(cmd.ErrOrStderr(), app.Verbose)
		format.ApplyGlyphPreference()
		format.ApplyColorProfilePreference()
	}

	cmd.PersistentFlags().StringVar(&app.List, "list", envOr("TODO_LIST", ""), "List name (default: TODO.md discovered upwards from the current dir, else the general list)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODO_FORMAT", "text"), "Output format (text|json)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log what the command does to stderr")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newLsCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newUndoneCmd(app))
	cmd.AddCommand(newMoveCmd(app))
	cmd.AddCommand(newRenumberCmd(app))
	cmd.AddCommand(newListsCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

func runTUI(app *App) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	path, source := resolveList(app, cfg)
	app.logger.Debug("opening list", "path", path, "source", source)
	return tui.Run(path)
}

// resolveList picks the list file for this invocation: --list, then a TODO.md
// discovered from the working directory upwards, then the general list.
func resolveList(app *App, cfg *store.Config) (path, source string) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return store.ResolveListPath(cfg, app.List, cwd)
}

func loadList(app *App) (*model.Document, string, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, "", err
	}
	path, source := resolveList(app, cfg)
	d, err := store.LoadDocument(path)
	if err != nil {
		return nil, "", err
	}
	app.logger.Debug("loaded list", "path", path, "source", source, "items", len(d.Items()))
	return d, path, nil
}

func saveList(app *App, path string, d *model.Document) error {
	if err := store.SaveDocument(path, d); err != nil {
		return err
	}
	app.logger.Debug("saved list", "path", path)

	// Best-effort: the save already succeeded, so a failed commit only warns.
	if gitrepo.AutoCommitEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		committed, err := gitrepo.CommitFile(ctx, path, "")
		if err != nil {
			app.logger.Warn("git autocommit failed", "path", path, "err", err)
		} else if committed {
			app.logger.Debug("git autocommit", "path", path)
		}
	}
	return nil
}

func parseNumbers(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("not an item number: %q", a)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// envelope is the {"data": ...} wrapper all commands emit in JSON mode. Text
// mode delegates to the payload's own renderer.
type envelope struct {
	Data any `json:"data"`
}

func (e envelope) RenderText(w io.Writer) error {
	if tr, ok := e.Data.(format.TextRenderer); ok {
		return tr.RenderText(w)
	}
	return format.WriteJSON(w, e, true)
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), envelope{Data: v}, app.Format, app.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
