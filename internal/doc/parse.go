package doc

import (
	"strings"

	"todo-cli/internal/model"
)

// Parse converts raw list-file text into a document. Parsing is total: a line
// that is not a recognizable item, heading, or attached note is carried as
// opaque content, so malformed input can never lose data. Empty input parses
// to an empty document with the implicit default section.
func Parse(raw string) *model.Document {
	d := model.NewDocument()
	if raw == "" {
		return d
	}

	lines := strings.Split(raw, "\n")
	if lines[len(lines)-1] == "" {
		d.TrailingNewline = true
		lines = lines[:len(lines)-1]
	}

	cur := d.DefaultSection()
	var curItem *model.Item

	// Opaque lines batch into one block per run; blank lines after an item are
	// held back until we know whether the attachment run continues past them.
	var opaque []string
	var blanks []string

	flushOpaque := func() {
		if len(opaque) > 0 {
			cur.Entries = append(cur.Entries, &model.OpaqueBlock{Lines: opaque})
			opaque = nil
		}
	}
	blanksToOpaque := func() {
		opaque = append(opaque, blanks...)
		blanks = nil
	}

	for _, line := range lines {
		switch {
		case isBlank(line):
			if curItem != nil {
				blanks = append(blanks, line)
			} else {
				opaque = append(opaque, line)
			}

		case isHeading(line):
			blanksToOpaque()
			flushOpaque()
			curItem = nil
			sec := &model.Section{Heading: line}
			d.Sections = append(d.Sections, sec)
			cur = sec

		default:
			if il, ok := parseItemLine(line); ok {
				blanksToOpaque()
				flushOpaque()
				it := &model.Item{Number: il.number, Text: il.text, Done: il.done}
				it.SetRawLine(line, il.indent)
				cur.Entries = append(cur.Entries, it)
				curItem = it
				continue
			}
			if curItem != nil && indentWidth(line) > curItem.Indent() {
				// Indented note under the current item. Blank lines inside the
				// run belong to the attachment.
				curItem.AttachedLines = append(curItem.AttachedLines, blanks...)
				blanks = nil
				curItem.AttachedLines = append(curItem.AttachedLines, line)
				continue
			}
			blanksToOpaque()
			curItem = nil
			opaque = append(opaque, line)
		}
	}

	blanksToOpaque()
	flushOpaque()
	return d
}
