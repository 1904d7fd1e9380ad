package tui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"todo-cli/internal/doc"
	"todo-cli/internal/format"
	"todo-cli/internal/model"
	"todo-cli/internal/mutate"
	"todo-cli/internal/store"
)

// row is one item in the browser, flattened out of its section.
type row struct {
	item    *model.Item
	section string
}

func (r row) FilterValue() string { return r.item.Text }

type appModel struct {
	path string
	doc  *model.Document

	list    list.Model
	preview viewport.Model

	showDone    bool
	showPreview bool
	width       int
	height      int
	status      string
}

func newAppModel(path string) (*appModel, error) {
	d, err := store.LoadDocument(path)
	if err != nil {
		return nil, err
	}

	m := &appModel{path: path, doc: d}

	l := list.New(nil, newRowDelegate(d), 0, 0)
	l.Title = filepath.Base(path)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	m.list = l
	m.preview = viewport.New(0, 0)
	m.reloadRows()

	return m, nil
}

func (m *appModel) reloadRows() {
	rows := make([]list.Item, 0, len(m.doc.Items()))
	for _, sec := range m.doc.Sections {
		for _, e := range sec.Entries {
			it, ok := e.(*model.Item)
			if !ok {
				continue
			}
			if it.Done && !m.showDone {
				continue
			}
			rows = append(rows, row{item: it, section: sec.Name()})
		}
	}
	m.list.SetItems(rows)
	m.list.SetDelegate(newRowDelegate(m.doc))
}

func (m *appModel) Init() tea.Cmd { return nil }

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		// Let the list's filter input see every key while filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.toggleSelected()
			return m, nil
		case "tab":
			m.showDone = !m.showDone
			m.reloadRows()
			return m, nil
		case "p":
			m.showPreview = !m.showPreview
			m.layout()
			if m.showPreview {
				m.refreshPreview()
			}
			return m, nil
		case "R":
			if d, err := store.LoadDocument(m.path); err == nil {
				m.doc = d
				m.reloadRows()
				m.status = "reloaded"
			} else {
				m.status = err.Error()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.showPreview {
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *appModel) layout() {
	h := m.height - 2 // status/help line
	if h < 1 {
		h = 1
	}
	m.list.SetSize(m.width, h)
	m.preview.Width = m.width
	m.preview.Height = h
}

func (m *appModel) toggleSelected() {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return
	}
	res := mutate.SetDone(m.doc, []int{r.item.Number}, !r.item.Done)
	if len(res.Updated) == 0 {
		return
	}
	if err := store.SaveDocument(m.path, m.doc); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("saved %s", m.path)
	m.reloadRows()
}

func (m *appModel) refreshPreview() {
	m.preview.SetContent(renderMarkdown(doc.Render(m.doc), m.preview.Width))
	m.preview.GotoTop()
}

func (m *appModel) View() string {
	help := "space toggle  tab done  p preview  / filter  R reload  q quit"
	if m.showPreview {
		help = "p back  ↑/↓ scroll  q quit"
	}
	body := m.list.View()
	if m.showPreview {
		body = m.preview.View()
	}

	footer := lipgloss.NewStyle().Foreground(colorMuted).Render(help)
	if m.status != "" {
		footer = lipgloss.NewStyle().Foreground(colorMuted).Render(m.status) + "  " + footer
	}
	return body + "\n" + footer
}

// rowDelegate renders items the way the file looks: aligned number, checkbox,
// text with highlighted tags.
type rowDelegate struct {
	width int
}

func newRowDelegate(d *model.Document) rowDelegate {
	return rowDelegate{width: len(fmt.Sprintf("%d", max(d.MaxNumber(), 1)))}
}

func (rowDelegate) Height() int                         { return 1 }
func (rowDelegate) Spacing() int                        { return 0 }
func (rowDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (dl rowDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	r, ok := li.(row)
	if !ok {
		return
	}

	glyph := format.CheckboxTodo()
	if r.item.Done {
		glyph = format.CheckboxDone()
	}

	numStyle := lipgloss.NewStyle().Foreground(colorMuted)
	textStyle := lipgloss.NewStyle()
	if r.item.Done {
		textStyle = textStyle.Strikethrough(true).Foreground(colorDone)
	}

	text := doc.ReplaceTags(r.item.Text, func(tag string) string {
		return lipgloss.NewStyle().Foreground(colorTag).Render(tag)
	})
	if r.item.Done {
		text = textStyle.Render(r.item.Text)
	}

	line := fmt.Sprintf("%s  %s %s",
		numStyle.Render(fmt.Sprintf("%*d", dl.width, r.item.Number)),
		glyph,
		text,
	)
	if r.section != "" {
		line += lipgloss.NewStyle().Foreground(colorMuted).Render("  (" + r.section + ")")
	}

	cursor := "  "
	if index == m.Index() {
		cursor = lipgloss.NewStyle().Foreground(colorSelected).Bold(true).Render("> ")
	}

	// Truncate on display width, not bytes: styled text carries escape
	// sequences and the checkbox glyph is double-width.
	fmt.Fprint(w, ansi.Truncate(cursor+line, max(m.Width(), 4), "…"))
}
