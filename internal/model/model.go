package model

import "strings"

// Entry is one parsed region of a list file: either a todo item or a run of
// opaque lines the tool passes through untouched.
type Entry interface {
	entry()
}

// Item is a single task line plus any note lines indented beneath it.
type Item struct {
	Number int
	Text   string
	Done   bool

	// AttachedLines are preserved verbatim, in authored order. They are never
	// parsed for tags or numbering.
	AttachedLines []string

	// raw is the item's original source line. While set, the renderer emits it
	// byte-for-byte; mutations clear it so the item re-renders canonically.
	raw string
	// indent is the display width of the raw line's leading whitespace,
	// used as the baseline for attached-line detection.
	indent int
}

func (*Item) entry() {}

// RawLine returns the item's original source line, if it is still untouched.
func (it *Item) RawLine() (string, bool) {
	return it.raw, it.raw != ""
}

func (it *Item) SetRawLine(line string, indent int) {
	it.raw = line
	it.indent = indent
}

// Indent reports the baseline indentation of the item's source line.
func (it *Item) Indent() int {
	return it.indent
}

// Invalidate drops the item's raw source line after a mutation, forcing
// canonical rendering.
func (it *Item) Invalidate() {
	it.raw = ""
}

// OpaqueBlock is a run of consecutive lines the parser did not understand.
// It exists purely to guarantee round-trip fidelity and is never mutated.
type OpaqueBlock struct {
	Lines []string
}

func (*OpaqueBlock) entry() {}

// Section groups a contiguous run of entries beneath a markdown heading.
// The leading, heading-less part of a file is the implicit default section.
type Section struct {
	// Heading is the raw heading line (e.g. "## Errands"); empty for the
	// implicit default section.
	Heading string
	Entries []Entry
}

// Implicit reports whether this is the heading-less default section.
func (s *Section) Implicit() bool {
	return s.Heading == ""
}

// Name returns the heading text without the leading '#' markers, trimmed.
// The implicit section has the empty name.
func (s *Section) Name() string {
	return strings.TrimSpace(strings.TrimLeft(s.Heading, "#"))
}

// Document is the full parsed representation of one list file. It always has
// at least the implicit default section, and is owned by a single command
// invocation: parse, mutate in memory, render, write back.
type Document struct {
	Sections []*Section

	// TrailingNewline records whether the source text ended with a newline,
	// so an untouched document renders byte-for-byte.
	TrailingNewline bool
}

// NewDocument returns an empty document with the implicit default section.
func NewDocument() *Document {
	return &Document{Sections: []*Section{{}}}
}

// DefaultSection returns the implicit leading section.
func (d *Document) DefaultSection() *Section {
	return d.Sections[0]
}

// LastSection returns the final section (the implicit one for a file without
// headings).
func (d *Document) LastSection() *Section {
	return d.Sections[len(d.Sections)-1]
}

// FindSection returns the section with the given heading name, nil if absent.
// The empty name addresses the implicit default section.
func (d *Document) FindSection(name string) *Section {
	name = strings.TrimSpace(name)
	for _, s := range d.Sections {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// Items returns every item in document order.
func (d *Document) Items() []*Item {
	var out []*Item
	for _, s := range d.Sections {
		for _, e := range s.Entries {
			if it, ok := e.(*Item); ok {
				out = append(out, it)
			}
		}
	}
	return out
}

// ListItems returns items in document order, excluding done items unless
// includeDone is set.
func (d *Document) ListItems(includeDone bool) []*Item {
	var out []*Item
	for _, it := range d.Items() {
		if it.Done && !includeDone {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FindItem returns the item with the given number, nil if absent. Numbers are
// unique within a document, so the first match wins.
func (d *Document) FindItem(number int) *Item {
	for _, it := range d.Items() {
		if it.Number == number {
			return it
		}
	}
	return nil
}

// MaxNumber returns the highest item number in the document, 0 when empty.
func (d *Document) MaxNumber() int {
	max := 0
	for _, it := range d.Items() {
		if it.Number > max {
			max = it.Number
		}
	}
	return max
}

// RemoveItem detaches the item with the given number from its section and
// returns it. Returns nil if the number is absent.
func (d *Document) RemoveItem(number int) *Item {
	for _, s := range d.Sections {
		for i, e := range s.Entries {
			it, ok := e.(*Item)
			if !ok || it.Number != number {
				continue
			}
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return it
		}
	}
	return nil
}
