package format

import (
	"os"
	"strings"
	"sync"
)

// Terminal apps can't change the user's font. We can pick between Unicode and
// ASCII checkbox glyphs for terminals/fonts that don't render emoji squares
// cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// ApplyGlyphPreference reads TODO_GLYPHS (unicode|ascii) once at startup.
func ApplyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("TODO_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

// CheckboxTodo is the display glyph for an open item. The on-disk form is
// always the Unicode checkbox; this only affects terminal output.
func CheckboxTodo() string {
	if glyphs() == glyphSetASCII {
		return "[ ]"
	}
	return "⬜"
}

func CheckboxDone() string {
	if glyphs() == glyphSetASCII {
		return "[x]"
	}
	return "✅"
}

func GlyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func GlyphArrow() string {
	if glyphs() == glyphSetASCII {
		return "->"
	}
	return "→"
}
