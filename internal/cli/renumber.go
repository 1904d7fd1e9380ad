package cli

import (
	"fmt"
	"io"

	"todo-cli/internal/mutate"

	"github.com/spf13/cobra"
)

type renumberPayload struct {
	List    string `json:"list"`
	Changed int    `json:"changed"`
	Total   int    `json:"total"`
}

func (p renumberPayload) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "renumbered %d of %d items\n", p.Changed, p.Total)
	return err
}

func newRenumberCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "renumber",
		Short: "Compact item numbers to 1..n in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, path, err := loadList(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			res := mutate.Renumber(d)
			if res.Changed > 0 {
				if err := saveList(app, path, d); err != nil {
					return writeErr(cmd, err)
				}
			}

			return writeOut(cmd, app, renumberPayload{
				List:    path,
				Changed: res.Changed,
				Total:   res.Total,
			})
		},
	}
}
