package cli

import (
	"todo-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <number>...",
		Short: "Mark items as completed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetDone(cmd, app, args, true)
		},
	}
}

func newUndoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undone <number>...",
		Short: "Mark items as not completed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetDone(cmd, app, args, false)
		},
	}
}

// runSetDone applies the toggle to every number it can find and reports the
// rest as missing; one bad number never blocks the others.
func runSetDone(cmd *cobra.Command, app *App, args []string, done bool) error {
	nums, err := parseNumbers(args)
	if err != nil {
		return writeErr(cmd, err)
	}

	d, path, err := loadList(app)
	if err != nil {
		return writeErr(cmd, err)
	}

	res := mutate.SetDone(d, nums, done)
	if len(res.Updated) > 0 {
		if err := saveList(app, path, d); err != nil {
			return writeErr(cmd, err)
		}
	}
	app.logger.Debug("toggled items", "done", done, "updated", len(res.Updated), "missing", len(res.Missing))

	views := make([]itemView, 0, len(res.Updated))
	for _, it := range res.Updated {
		views = append(views, viewOf(it, ""))
	}
	return writeOut(cmd, app, itemLinesPayload{
		List:    path,
		Items:   views,
		Missing: res.Missing,
		width:   numberWidth(d),
		items:   res.Updated,
	})
}
