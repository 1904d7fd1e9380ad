package format

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"todo-cli/internal/doc"
)

func plainColors(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestDocumentLines(t *testing.T) {
	plainColors(t)

	d := doc.Parse("# Inbox\n 9  ⬜ write spec\n   needs review\n11  ✅ add tags\n\n# Empty\n")

	got := DocumentLines(d, false)
	want := []string{
		"# Inbox",
		" 9  ⬜ write spec",
		"   needs review",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lines:\n got: %#v\nwant: %#v", got, want)
	}

	all := DocumentLines(d, true)
	if len(all) != 4 {
		t.Fatalf("with done items expected 4 lines, got %#v", all)
	}
	if !strings.Contains(all[3], "✅") {
		t.Fatalf("done line = %q", all[3])
	}
}

func TestDocumentLinesSkipsOpaqueBlocks(t *testing.T) {
	plainColors(t)

	d := doc.Parse("free-form note\n1  ⬜ task\n")
	got := DocumentLines(d, false)
	if !reflect.DeepEqual(got, []string{"1  ⬜ task"}) {
		t.Fatalf("lines: %#v", got)
	}
}

func TestItemLineASCIIGlyphs(t *testing.T) {
	plainColors(t)
	t.Setenv("TODO_GLYPHS", "ascii")
	ApplyGlyphPreference()
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	d := doc.Parse("1  ⬜ open\n2  ✅ closed\n")
	items := d.Items()

	if got := ItemLine(items[0], 1); got != "1  [ ] open" {
		t.Fatalf("open = %q", got)
	}
	if got := ItemLine(items[1], 1); got != "2  [x] closed" {
		t.Fatalf("closed = %q", got)
	}
}

func TestWriteJSONEnvelope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	payload := map[string]any{"data": map[string]any{"number": 12}}
	if err := Write(&buf, payload, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got map[string]map[string]int
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["data"]["number"] != 12 {
		t.Fatalf("payload = %#v", got)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("JSON output must end with a newline")
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, nil, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
