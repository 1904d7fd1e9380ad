package cli

import (
	"strings"

	"todo-cli/internal/model"
	"todo-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add an item to the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, path, err := loadList(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			res, err := mutate.Add(d, strings.Join(args, " "), section)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveList(app, path, d); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Debug("added item", "number", res.Item.Number, "section", res.Section.Name())

			return writeOut(cmd, app, itemLinesPayload{
				List:  path,
				Items: []itemView{viewOf(res.Item, res.Section.Name())},
				width: numberWidth(d),
				items: []*model.Item{res.Item},
			})
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "Target section heading (default: the last section; created when missing)")

	return cmd
}
