package doc

import (
	"fmt"
	"strings"

	"todo-cli/internal/model"
)

// Render converts a document back into file text. It is the exact inverse of
// Parse for any document Parse produced: untouched items emit their original
// source line, opaque blocks and attached notes are verbatim, and only
// mutated items re-render in the canonical "<number>  <checkbox> <text>"
// form, with the number right-aligned to the width of the document's largest
// number.
func Render(d *model.Document) string {
	width := numberWidth(d.MaxNumber())

	var lines []string
	for _, s := range d.Sections {
		if !s.Implicit() {
			lines = append(lines, s.Heading)
		}
		for _, e := range s.Entries {
			switch v := e.(type) {
			case *model.Item:
				lines = append(lines, renderItemLine(v, width))
				lines = append(lines, v.AttachedLines...)
			case *model.OpaqueBlock:
				lines = append(lines, v.Lines...)
			}
		}
	}

	out := strings.Join(lines, "\n")
	if d.TrailingNewline && len(lines) > 0 {
		out += "\n"
	}
	return out
}

func renderItemLine(it *model.Item, width int) string {
	if raw, ok := it.RawLine(); ok {
		return raw
	}
	glyph := CheckboxTodo
	if it.Done {
		glyph = CheckboxDone
	}
	if it.Text == "" {
		return fmt.Sprintf("%*d  %s", width, it.Number, glyph)
	}
	return fmt.Sprintf("%*d  %s %s", width, it.Number, glyph, it.Text)
}

func numberWidth(max int) int {
	w := 1
	for max >= 10 {
		max /= 10
		w++
	}
	return w
}
