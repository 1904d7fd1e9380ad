package cli

import (
	"fmt"
	"io"

	"todo-cli/internal/doc"
	"todo-cli/internal/format"
	"todo-cli/internal/model"
)

// itemView is the JSON shape of an item in command output. Tags are derived
// from the text on the way out; they are never stored in the file.
type itemView struct {
	Number  int      `json:"number"`
	Text    string   `json:"text"`
	Done    bool     `json:"done"`
	Tags    []string `json:"tags,omitempty"`
	Section string   `json:"section,omitempty"`
}

func viewOf(it *model.Item, section string) itemView {
	return itemView{
		Number:  it.Number,
		Text:    it.Text,
		Done:    it.Done,
		Tags:    doc.ExtractTags(it.Text),
		Section: section,
	}
}

func itemViews(d *model.Document, includeDone bool, tag string) []itemView {
	var out []itemView
	for _, sec := range d.Sections {
		for _, e := range sec.Entries {
			it, ok := e.(*model.Item)
			if !ok {
				continue
			}
			if it.Done && !includeDone {
				continue
			}
			if tag != "" && !doc.HasTag(it.Text, tag) {
				continue
			}
			out = append(out, viewOf(it, sec.Name()))
		}
	}
	return out
}

// itemLinesPayload is the common text-mode output for mutations: one styled
// line per touched item, plus a note for numbers that matched nothing.
type itemLinesPayload struct {
	List    string     `json:"list"`
	Items   []itemView `json:"items"`
	Missing []int      `json:"missing,omitempty"`

	width int
	items []*model.Item
}

func (p itemLinesPayload) RenderText(w io.Writer) error {
	for _, it := range p.items {
		if _, err := fmt.Fprintln(w, format.ItemLine(it, p.width)); err != nil {
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

func numberWidth(d *model.Document) int {
	return len(fmt.Sprintf("%d", max(d.MaxNumber(), 1)))
}
