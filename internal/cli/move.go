package cli

import (
	"fmt"
	"io"

	"todo-cli/internal/doc"
	"todo-cli/internal/format"
	"todo-cli/internal/mutate"
	"todo-cli/internal/store"

	"github.com/spf13/cobra"
)

type movePayload struct {
	From    string      `json:"from"`
	To      string      `json:"to"`
	Moved   []movedView `json:"moved"`
	Missing []int       `json:"missing,omitempty"`
}

type movedView struct {
	OldNumber int      `json:"oldNumber"`
	NewNumber int      `json:"newNumber"`
	Text      string   `json:"text"`
	Tags      []string `json:"tags,omitempty"`
}

func (p movePayload) RenderText(w io.Writer) error {
	for _, m := range p.Moved {
		if _, err := fmt.Fprintf(w, "%d %s %d  %s\n", m.OldNumber, format.GlyphArrow(), m.NewNumber, m.Text); err != nil {
			return err
		}
	}
	for _, n := range p.Missing {
		if _, err := fmt.Fprintf(w, "item not found: %d\n", n); err != nil {
			return err
		}
	}
	return nil
}

func newMoveCmd(app *App) *cobra.Command {
	var to string
	var section string

	cmd := &cobra.Command{
		Use:   "move <number>... --to <list>",
		Short: "Move items to another list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args)
			if err != nil {
				return writeErr(cmd, err)
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			srcPath, _ := resolveList(app, cfg)
			dstPath := cfg.ListPath(to)
			if dstPath == srcPath {
				return writeErr(cmd, mutate.InvalidInputError{Reason: "destination is the source list"})
			}

			src, err := store.LoadDocument(srcPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			dst, err := store.LoadDocument(dstPath)
			if err != nil {
				return writeErr(cmd, err)
			}

			res := mutate.Move(src, dst, nums, section)
			if len(res.Moved) > 0 {
				// Destination first: a crash between the two writes duplicates
				// items instead of losing them.
				if err := saveList(app, dstPath, dst); err != nil {
					return writeErr(cmd, err)
				}
				if err := saveList(app, srcPath, src); err != nil {
					return writeErr(cmd, err)
				}
			}
			app.logger.Debug("moved items", "from", srcPath, "to", dstPath, "moved", len(res.Moved), "missing", len(res.Missing))

			moved := make([]movedView, 0, len(res.Moved))
			for _, m := range res.Moved {
				moved = append(moved, movedView{
					OldNumber: m.OldNumber,
					NewNumber: m.NewNumber,
					Text:      m.Item.Text,
					Tags:      doc.ExtractTags(m.Item.Text),
				})
			}
			return writeOut(cmd, app, movePayload{
				From:    srcPath,
				To:      dstPath,
				Moved:   moved,
				Missing: res.Missing,
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Destination list name")
	cmd.Flags().StringVarP(&section, "section", "s", "", "Target section in the destination (default: its last section)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
