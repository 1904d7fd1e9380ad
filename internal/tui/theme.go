package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The browser must stay readable on both light and dark terminals, so
// foreground styles use lipgloss.AdaptiveColor throughout.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted    = ac("240", "243")
	colorAccent   = ac("27", "75")
	colorSelected = ac("232", "255")
	colorDone     = ac("245", "243")
	colorTag      = ac("94", "220")
)

// applyColorProfilePreference sets Lip Gloss's color profile for the browser.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which suits
// piped CLI output but can accidentally strip a TUI of color. Here we honor
// only NO_COLOR and otherwise follow what the terminal supports.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection for AdaptiveColor.
//
// Priority:
// 1) TODO_TUI_THEME=light|dark
// 2) COLORFGBG heuristic ("fg;bg", last segment is the background)
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TODO_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
