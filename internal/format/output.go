package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write writes output in the requested format.
//
// Supported formats:
// - text (default)
// - json
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "text":
		return writeText(w, v)
	case "json":
		return WriteJSON(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
//
// NOTE: We intentionally keep output strict JSON only. If you need to
// communicate how to fetch more data, use a `meta` object or `_hint` fields.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// TextRenderer is implemented by payloads that know how to print themselves
// for a terminal. Payloads without one fall back to JSON so text mode never
// produces Go struct dumps.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

func writeText(w io.Writer, v any) error {
	if tr, ok := v.(TextRenderer); ok {
		return tr.RenderText(w)
	}
	return WriteJSON(w, v, true)
}
