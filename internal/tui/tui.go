package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the interactive browser for one list file.
func Run(path string) error {
	applyColorProfilePreference()
	applyThemePreference()

	m, err := newAppModel(path)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
