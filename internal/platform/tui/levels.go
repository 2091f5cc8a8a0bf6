package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Levels screen layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the variant sidebar
	sidebarWidth       = 28
)

// LevelSheet is the difficulty table of one game variant.
type LevelSheet struct {
	ID     string
	Title  string
	Levels []config.LevelStats
}

// LevelsKeyMap defines the key bindings for the levels screen.
type LevelsKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k LevelsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.Back, k.Quit},
	}
}

// DefaultLevelsKeyMap returns default key bindings.
func DefaultLevelsKeyMap() LevelsKeyMap {
	return LevelsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelsModel shows the per-level difficulty of each variant.
type LevelsModel struct {
	sheets      []LevelSheet
	cursor      int
	table       table.Model
	help        help.Model
	keys        LevelsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewLevelsModel creates the levels screen.
func NewLevelsModel(sheets []LevelSheet, width, height int) LevelsModel {
	h := help.New()
	h.Width = width

	m := LevelsModel{
		sheets:      sheets,
		keys:        DefaultLevelsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable builds an empty table sized for the window.
func (m *LevelsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Speed px/tick", Width: 14},
		{Title: "Spacing px", Width: 12},
		{Title: "Cars/lane", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// LevelRow formats one level as table cells.
func LevelRow(l config.LevelStats) []string {
	span := func(lo, hi int) string {
		if lo == hi {
			return fmt.Sprintf("%d", lo)
		}
		return fmt.Sprintf("%d-%d", lo, hi)
	}
	return []string{
		fmt.Sprintf("%d", l.Level),
		fmt.Sprintf("%.2f-%.2f", l.SpeedMin, l.SpeedMax),
		fmt.Sprintf("%.0f-%.0f", l.SpacingMin, l.SpacingMax),
		span(l.CarsMin, l.CarsMax),
	}
}

func (m *LevelsModel) updateTableRows() {
	var rows []table.Row
	if len(m.sheets) > 0 {
		for _, l := range m.sheets[m.cursor].Levels {
			rows = append(rows, table.Row(LevelRow(l)))
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the levels model.
func (m LevelsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the levels screen.
func (m LevelsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant):
			if len(m.sheets) > 0 {
				m.cursor = (m.cursor + 1) % len(m.sheets)
				m.updateTableRows()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if len(m.sheets) > 0 {
				m.cursor = (m.cursor - 1 + len(m.sheets)) % len(m.sheets)
				m.updateTableRows()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// View renders the levels screen.
func (m LevelsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "LEVELS"
	if len(m.sheets) > 0 {
		title = "LEVELS - " + m.sheets[m.cursor].Title
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableRendered := panelStyle.Render(m.table.View())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m LevelsModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Variants\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, s := range m.sheets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + s.Title))
		sidebar.WriteString("\n")
	}
	return panelStyle.Width(sidebarWidth).Render(sidebar.String())
}

// IsGoingBack reports whether the user wants to return to the menu.
func (m LevelsModel) IsGoingBack() bool {
	return m.goingBack
}

// RunLevels shows the levels screen. Returns true if the user wants to go
// back to the menu.
func RunLevels(sheets []LevelSheet, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewLevelsModel(sheets, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(LevelsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
