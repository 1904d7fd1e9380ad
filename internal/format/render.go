package format

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"todo-cli/internal/doc"
	"todo-cli/internal/model"
)

// Styled terminal rendering for list output. The on-disk file stays plain
// markdown; color and emphasis are applied only on the way out.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(ac("27", "75"))
	styleNumber  = lipgloss.NewStyle().Foreground(ac("240", "245"))
	styleDone    = lipgloss.NewStyle().Strikethrough(true).Foreground(ac("245", "243"))
	styleTag     = lipgloss.NewStyle().Foreground(ac("94", "220"))
	styleNote    = lipgloss.NewStyle().Faint(true)
)

// ApplyColorProfilePreference sets Lip Gloss's color profile for plain CLI
// output. termenv.EnvColorProfile honors NO_COLOR/CLICOLOR/CLICOLOR_FORCE,
// which is what we want for non-interactive commands (the TUI does its own
// detection).
func ApplyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// ItemLine renders one item for the terminal: right-aligned number, checkbox
// glyph, then the text with tags highlighted. width is the number column width
// for the whole document, so lines stay aligned like the file itself.
func ItemLine(it *model.Item, width int) string {
	glyph := CheckboxTodo()
	if it.Done {
		glyph = CheckboxDone()
	}

	num := styleNumber.Render(fmt.Sprintf("%*d", width, it.Number))
	text := highlightTags(it.Text)
	if it.Done {
		text = styleDone.Render(it.Text)
	}
	if text == "" {
		return fmt.Sprintf("%s  %s", num, glyph)
	}
	return fmt.Sprintf("%s  %s %s", num, glyph, text)
}

// highlightTags styles each #tag occurrence in place, leaving the rest of the
// text untouched.
func highlightTags(text string) string {
	return doc.ReplaceTags(text, func(tag string) string {
		return styleTag.Render(tag)
	})
}

// HeadingLine renders a section heading (with its leading '#' run).
func HeadingLine(heading string) string {
	return styleHeading.Render(heading)
}

// NoteLine renders attached free-form lines under an item.
func NoteLine(line string) string {
	return styleNote.Render(line)
}

// DocumentLines renders the listable view of a document: headings, items, and
// their attached lines. Done items are skipped unless includeDone is set;
// opaque blocks never show (they belong to the file, not the list view).
func DocumentLines(d *model.Document, includeDone bool) []string {
	width := numberWidth(d)
	var out []string
	for _, sec := range d.Sections {
		var body []string
		for _, e := range sec.Entries {
			it, ok := e.(*model.Item)
			if !ok {
				continue
			}
			if it.Done && !includeDone {
				continue
			}
			body = append(body, ItemLine(it, width))
			for _, l := range it.AttachedLines {
				if strings.TrimSpace(l) == "" {
					continue
				}
				body = append(body, NoteLine(l))
			}
		}
		if len(body) == 0 {
			continue
		}
		if !sec.Implicit() {
			out = append(out, HeadingLine(sec.Heading))
		}
		out = append(out, body...)
	}
	return out
}

func numberWidth(d *model.Document) int {
	return len(fmt.Sprintf("%d", max(d.MaxNumber(), 1)))
}
