package doc

import "strings"

// Checkbox glyphs used in list files. The ASCII forms are accepted on parse
// for files authored without Unicode input; rendering always emits the glyphs.
const (
	CheckboxTodo = "⬜"
	CheckboxDone = "✅"
)

// itemLine holds the pieces of a recognized todo item line.
type itemLine struct {
	number int
	done   bool
	text   string
	indent int
}

// indentWidth returns the display width of a line's leading whitespace.
// Tabs count as 4 columns.
func indentWidth(line string) int {
	w := 0
	for _, r := range line {
		switch r {
		case ' ':
			w++
		case '\t':
			w += 4
		default:
			return w
		}
	}
	return w
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isHeading reports whether a line is a markdown section heading: one or more
// '#' at column zero followed by whitespace and text. A bare "#" or a "#tag"
// token at the start of a line is not a heading.
func isHeading(line string) bool {
	if len(line) == 0 || line[0] != '#' {
		return false
	}
	rest := strings.TrimLeft(line, "#")
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return false
	}
	return strings.TrimSpace(rest) != ""
}

// parseItemLine recognizes "<ws><number><ws><checkbox>[ ]<text>".
// Anything malformed is rejected so the line stays opaque; round-trip safety
// wins over strict parsing.
func parseItemLine(line string) (itemLine, bool) {
	indent := indentWidth(line)
	s := strings.TrimLeft(line, " \t")

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return itemLine{}, false
	}
	number := 0
	for _, c := range s[:i] {
		number = number*10 + int(c-'0')
	}

	rest := s[i:]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return itemLine{}, false
	}
	rest = strings.TrimLeft(rest, " \t")

	var done bool
	switch {
	case strings.HasPrefix(rest, CheckboxTodo):
		done = false
		rest = rest[len(CheckboxTodo):]
	case strings.HasPrefix(rest, CheckboxDone):
		done = true
		rest = rest[len(CheckboxDone):]
	case strings.HasPrefix(rest, "[ ]"):
		done = false
		rest = rest[3:]
	case strings.HasPrefix(rest, "[x]"), strings.HasPrefix(rest, "[X]"):
		done = true
		rest = rest[3:]
	default:
		return itemLine{}, false
	}

	// One separator space between checkbox and text; keep any further
	// whitespace as part of the text so nothing is lost.
	rest = strings.TrimPrefix(rest, " ")

	return itemLine{number: number, done: done, text: rest, indent: indent}, true
}
