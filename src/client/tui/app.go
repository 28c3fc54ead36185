// Package tui provides the full-screen catalog browser
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/apimgr/courseplanner/src/catalog"
	"github.com/apimgr/courseplanner/src/common/terminal"
	"github.com/apimgr/courseplanner/src/common/theme"
	"github.com/apimgr/courseplanner/src/menu"
)

// chrome is the number of rows taken by everything but the list
const chrome = 9

type styles struct {
	title  lipgloss.Style
	input  lipgloss.Style
	course lipgloss.Style
	detail lipgloss.Style
	help   lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
}

func newStyles(plain bool, th theme.Theme) styles {
	if plain {
		s := lipgloss.NewStyle()
		return styles{
			title:  s.Bold(true),
			input:  s.BorderStyle(lipgloss.NormalBorder()).Padding(0, 1),
			course: s,
			detail: s,
			help:   s,
			ok:     s,
			warn:   s,
			err:    s,
		}
	}
	c := th.Colors
	return styles{
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Title)).Bold(true).Padding(0, 1),
		input:  lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.Border)).Padding(0, 1),
		course: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		detail: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Detail)),
		help:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.OK)),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Warn)),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)),
	}
}

// Options tunes the browser
type Options struct {
	Plain bool        // no colors
	Theme theme.Theme // zero value means theme.Dark
}

func (o Options) theme() theme.Theme {
	if o.Theme.Name == "" {
		return theme.Dark
	}
	return o.Theme
}

type model struct {
	catalog  *catalog.Catalog
	source   string
	input    textinput.Model
	viewport viewport.Model
	styles   styles

	status string
	level  slog.Level
	detail string
}

func newModel(c *catalog.Catalog, source string, opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "Course number, then Enter..."
	ti.Focus()
	ti.Width = 40

	size := terminal.GetSize()
	vp := viewport.New(size.Cols, max(size.Rows-chrome, 1))
	vp.KeyMap = listKeys()

	m := model{
		catalog:  c,
		source:   source,
		input:    ti,
		viewport: vp,
		styles:   newStyles(opts.Plain, opts.theme()),
	}
	m.refresh()
	return m
}

// listKeys scrolls the list with keys the lookup input does not use.
// The default viewport bindings include letters and space, which belong
// to the course number being typed.
func listKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.input.Value() == "" && m.detail == "" {
				return m, tea.Quit
			}
			m.input.SetValue("")
			m.detail = ""
		case "enter":
			m.lookup(strings.TrimSpace(m.input.Value()))
		case "ctrl+r":
			m.load()
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 1)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// load appends the source file to the catalog, like menu choice 1
func (m *model) load() {
	report, err := m.catalog.Load(m.source)
	if err != nil {
		slog.Error("catalog load failed", "source", m.source, "error", err)
		m.level = slog.LevelError
		if errors.Is(err, catalog.ErrSourceUnreadable) {
			m.status = "Could not open " + m.source
		} else {
			m.status = err.Error()
		}
		return
	}

	for _, le := range report.Rejected {
		slog.Warn("rejected catalog line", "source", m.source, "line", le.Line, "error", le.Err)
	}

	m.level = slog.LevelInfo
	m.status = fmt.Sprintf("Loaded %d courses from %s", report.Accepted, m.source)
	if !report.OK() {
		m.level = slog.LevelWarn
		m.status += fmt.Sprintf(" (%d invalid lines)", len(report.Rejected))
	}
	m.refresh()
}

func (m *model) lookup(number string) {
	if number == "" {
		return
	}
	c, ok := m.catalog.Lookup(number)
	if !ok {
		slog.Debug("course not found", "number", number)
		m.detail = "Course not found."
		return
	}
	m.detail = strings.TrimRight(menu.Detail(c), "\n")
}

func (m *model) refresh() {
	m.viewport.SetContent(m.renderList())
}

func (m model) renderList() string {
	if m.catalog.Empty() {
		return m.styles.help.Render("No courses loaded.")
	}
	var sb strings.Builder
	for c := range m.catalog.All() {
		sb.WriteString(m.styles.course.Render(c.String()))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.title.Render("Course Planner"))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.input.Render(m.input.View()))
	sb.WriteString("\n")

	if m.detail != "" {
		sb.WriteString(m.styles.detail.Render(m.detail))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	if m.status != "" {
		style := m.styles.ok
		switch m.level {
		case slog.LevelWarn:
			style = m.styles.warn
		case slog.LevelError:
			style = m.styles.err
		}
		sb.WriteString(style.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.help.Render("Enter: look up • ↑/↓ PgUp/PgDn: scroll • Ctrl+R: load again • Esc: clear/quit • Ctrl+C: quit"))

	return sb.String()
}

// Run loads source into c and starts the browser.
// After that first load every catalog access happens inside Update.
func Run(c *catalog.Catalog, source string, opts Options) error {
	m := newModel(c, source, opts)
	m.load()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
