package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/straight-to-the-comments/internal/storage"
)

// maxHistoryRows limits how many results the history view loads.
const maxHistoryRows = 50

// HistoryKeyMap defines key bindings for the history view.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing past results.
type HistoryModel struct {
	store    *storage.Store
	results  []storage.Result
	top      bool // ranked by likes instead of most recent
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history view. top selects the ranked list.
func NewHistoryModel(store *storage.Store, width, height int, top bool) HistoryModel {
	m := HistoryModel{
		store:  store,
		top:    top,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadResults()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Likes", Width: 8},
		{Title: "Footprint", Width: 9},
		{Title: "Rating", Width: 18},
		{Title: "Blocked", Width: 8},
		{Title: "When", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 5)), // Leave room for header, help, and margins
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

// loadResults reloads the current list from the store.
func (m *HistoryModel) loadResults() {
	m.results = nil
	m.loadErr = nil
	if m.store != nil {
		var err error
		if m.top {
			m.results, err = m.store.TopResults(maxHistoryRows)
		} else {
			m.results, err = m.store.RecentResults(maxHistoryRows)
		}
		m.loadErr = err
	}
	m.table.SetRows(historyRows(m.results))
	m.table.GotoTop()
}

// historyRows converts results to table rows.
func historyRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Player,
			humanize.Comma(int64(r.Likes)),
			fmt.Sprintf("%d", r.Footprint),
			r.Rating,
			fmt.Sprintf("%d", len(r.Blocked)),
			humanize.Time(r.CreatedAt),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.top = !m.top
			m.loadResults()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(historyRows(m.results))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "RECENT SESSIONS"
	if m.top {
		title = "TOP SESSIONS"
	}
	b.WriteString(titleStyle.MarginBottom(1).Render(title))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render(m.loadErr.Error()))
	case len(m.results) == 0:
		b.WriteString(mutedStyle.Italic(true).Padding(1, 2).
			Render("No sessions recorded yet.\nFinish a session to see it here!"))
	default:
		b.WriteString(cardStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunHistory runs the history browser.
func RunHistory(store *storage.Store, width, height int, top bool) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height, top),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
