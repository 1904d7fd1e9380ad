package doc

import (
	"reflect"
	"testing"
)

func TestParseItems(t *testing.T) {
	t.Parallel()

	d := Parse(" 9  ⬜ write spec\n11  ⬜ add tags\n")

	items := d.ListItems(false)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Number != 9 || items[0].Text != "write spec" || items[0].Done {
		t.Fatalf("item 0: %+v", items[0])
	}
	if items[1].Number != 11 || items[1].Text != "add tags" || items[1].Done {
		t.Fatalf("item 1: %+v", items[1])
	}
	if !d.TrailingNewline {
		t.Fatalf("expected trailing newline to be recorded")
	}
}

func TestParseCheckboxVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		done bool
		ok   bool
	}{
		{name: "unicode todo", line: "1  ⬜ buy milk", done: false, ok: true},
		{name: "unicode done", line: "2  ✅ buy milk", done: true, ok: true},
		{name: "ascii todo", line: "3  [ ] buy milk", done: false, ok: true},
		{name: "ascii done", line: "4  [x] buy milk", done: true, ok: true},
		{name: "ascii done upper", line: "5  [X] buy milk", done: true, ok: true},
		{name: "single space sep", line: "6 ⬜ tight", done: false, ok: true},
		{name: "no number", line: "⬜ no number", ok: false},
		{name: "no checkbox", line: "7  buy milk", ok: false},
		{name: "broken bracket", line: "8  [] buy milk", ok: false},
		{name: "number glued to box", line: "9⬜ glued", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := Parse(tt.line + "\n")
			items := d.Items()
			if !tt.ok {
				if len(items) != 0 {
					t.Fatalf("expected opaque, got item %+v", items[0])
				}
				return
			}
			if len(items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(items))
			}
			if items[0].Done != tt.done {
				t.Fatalf("done = %v, want %v", items[0].Done, tt.done)
			}
			if items[0].Text != "buy milk" && items[0].Text != "tight" {
				t.Fatalf("unexpected text %q", items[0].Text)
			}
		})
	}
}

func TestParseSections(t *testing.T) {
	t.Parallel()

	raw := "1  ⬜ loose task\n" +
		"# Work\n" +
		"2  ⬜ report #q3\n" +
		"## Errands\n" +
		"3  ✅ post office\n"
	d := Parse(raw)

	if len(d.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(d.Sections))
	}
	if !d.Sections[0].Implicit() {
		t.Fatalf("expected implicit first section")
	}
	if got := d.Sections[1].Name(); got != "Work" {
		t.Fatalf("section 1 name = %q, want Work", got)
	}
	if got := d.Sections[2].Name(); got != "Errands" {
		t.Fatalf("section 2 name = %q, want Errands", got)
	}
	if s := d.FindSection("Errands"); s == nil || len(s.Entries) != 1 {
		t.Fatalf("FindSection(Errands) = %+v", s)
	}
}

func TestParseAttachedLines(t *testing.T) {
	t.Parallel()

	raw := "1  ⬜ call plumber\n" +
		"   mentioned the leak under the sink\n" +
		"\n" +
		"   ask about the quote\n" +
		"2  ⬜ next task\n"
	d := Parse(raw)

	items := d.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	want := []string{
		"   mentioned the leak under the sink",
		"",
		"   ask about the quote",
	}
	if !reflect.DeepEqual(items[0].AttachedLines, want) {
		t.Fatalf("attached lines:\n got: %#v\nwant: %#v", items[0].AttachedLines, want)
	}
	if len(items[1].AttachedLines) != 0 {
		t.Fatalf("item 2 should have no attached lines: %#v", items[1].AttachedLines)
	}
}

func TestParseBlankAfterItemIsOpaque(t *testing.T) {
	t.Parallel()

	d := Parse("1  ⬜ a\n\n2  ⬜ b\n")
	sec := d.DefaultSection()
	if len(sec.Entries) != 3 {
		t.Fatalf("expected item/opaque/item, got %d entries", len(sec.Entries))
	}
	if len(d.Items()) != 2 {
		t.Fatalf("expected 2 items")
	}
}

func TestParseNeverFails(t *testing.T) {
	t.Parallel()

	// Garbage in, opaque out. Nothing becomes an item, nothing is lost.
	raw := "- [ ] legacy bullet item\n" +
		"random prose\n" +
		"#notaheading\n" +
		"   stray indented line\n"
	d := Parse(raw)
	if len(d.Items()) != 0 {
		t.Fatalf("expected no items, got %d", len(d.Items()))
	}
	if got := Render(d); got != raw {
		t.Fatalf("opaque round trip:\n got: %q\nwant: %q", got, raw)
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	d := Parse("")
	if len(d.Sections) != 1 || !d.Sections[0].Implicit() {
		t.Fatalf("expected single implicit section, got %+v", d.Sections)
	}
	if len(d.Items()) != 0 {
		t.Fatalf("expected no items")
	}
	if got := Render(d); got != "" {
		t.Fatalf("render of empty doc = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "single item", raw: "1  ⬜ hello\n"},
		{name: "no trailing newline", raw: "1  ⬜ hello"},
		{name: "blank line only", raw: "\n"},
		{
			name: "full file",
			raw: "Notes kept by hand, not understood by the tool.\n" +
				"\n" +
				" 9  ⬜ write spec #docs\n" +
				"    some context for the spec\n" +
				"11  ⬜ add tags\n" +
				"\n" +
				"# Work\n" +
				"\n" +
				"12  ✅ ship release\n" +
				"free-form note in the middle\n" +
				"13  [ ] ascii style item\n" +
				"\n" +
				"## Later\n" +
				"sectionless trailing prose\n",
		},
		{
			name: "odd spacing preserved",
			raw:  "   7   ⬜  double spaced text\n008  ⬜ zero padded\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Render(Parse(tt.raw))
			if got != tt.raw {
				t.Fatalf("round trip:\n got: %q\nwant: %q", got, tt.raw)
			}
		})
	}
}
