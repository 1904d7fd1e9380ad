package cli

import (
	"fmt"
	"io"

	"todo-cli/internal/format"
	"todo-cli/internal/model"

	"github.com/spf13/cobra"
)

type lsPayload struct {
	List  string     `json:"list"`
	Items []itemView `json:"items"`

	doc         *model.Document
	includeDone bool
	tag         string
}

func (p lsPayload) RenderText(w io.Writer) error {
	if len(p.Items) == 0 {
		_, err := fmt.Fprintln(w, "nothing to do")
		return err
	}
	lines := format.DocumentLines(p.doc, p.includeDone)
	if p.tag != "" {
		// Tag filtering changes which items show, so render the filtered items
		// flat instead of the whole document.
		lines = lines[:0]
		width := numberWidth(p.doc)
		for _, v := range p.Items {
			if it := p.doc.FindItem(v.Number); it != nil {
				lines = append(lines, format.ItemLine(it, width))
			}
		}
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func newLsCmd(app *App) *cobra.Command {
	var all bool
	var tag string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show the items on the list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, path, err := loadList(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			return writeOut(cmd, app, lsPayload{
				List:        path,
				Items:       itemViews(d, all, tag),
				doc:         d,
				includeDone: all,
				tag:         tag,
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed items")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only items carrying this #tag")

	return cmd
}
