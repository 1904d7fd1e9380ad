package mutate

import (
	"strings"

	"todo-cli/internal/model"
)

type AddResult struct {
	Item    *model.Item
	Section *model.Section
}

// Add creates a new item numbered one past the document's current maximum and
// appends it to the named section. With no section name the item goes to the
// last section, so it lands at the end of the file. A named section that does
// not exist yet is created with a "## <name>" heading.
//
// Persistence is the caller's responsibility.
func Add(d *model.Document, text, section string) (AddResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return AddResult{}, InvalidInputError{Reason: "empty item text"}
	}

	sec := d.LastSection()
	if name := strings.TrimSpace(section); name != "" {
		sec = d.FindSection(name)
		if sec == nil {
			sec = &model.Section{Heading: "## " + name}
			d.Sections = append(d.Sections, sec)
		}
	}

	it := &model.Item{
		Number: d.MaxNumber() + 1,
		Text:   text,
		Done:   false,
	}
	sec.Entries = append(sec.Entries, it)
	d.TrailingNewline = true

	return AddResult{Item: it, Section: sec}, nil
}
