package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-snake/internal/storage"
)

const maxRounds = 100 // rounds loaded per variant

// RoundsKeyMap defines the key bindings for the journal browser.
type RoundsKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RoundsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RoundsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextVariant, k.PrevVariant, k.Quit},
	}
}

// DefaultRoundsKeyMap returns default key bindings.
func DefaultRoundsKeyMap() RoundsKeyMap {
	return RoundsKeyMap{
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
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RoundsModel browses the round journal, one variant at a time.
type RoundsModel struct {
	store    *storage.Store
	variants []string
	cursor   int
	rounds   []storage.RoundRecord
	stats    *storage.RoundStats
	table    table.Model
	help     help.Model
	keys     RoundsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRoundsModel creates a journal browser. The variants are those found
// in the journal; start selects the initial one when present.
func NewRoundsModel(store *storage.Store, start string, width, height int) (RoundsModel, error) {
	variants, err := store.Variants()
	if err != nil {
		return RoundsModel{}, err
	}

	m := RoundsModel{
		store:    store,
		variants: variants,
		help:     help.New(),
		keys:     DefaultRoundsKeyMap(),
		width:    width,
		height:   height,
	}
	for i, v := range variants {
		if v == start {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m, nil
}

// createTable creates a new table with the journal columns.
func (m *RoundsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Outcome", Width: 11},
		{Title: "Length", Width: 7},
		{Title: "Steps", Width: 7},
		{Title: "Apples", Width: 7},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 5)), // Leave room for header, stats and help
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

// load reads the selected variant from the journal.
func (m *RoundsModel) load() {
	m.rounds, m.stats = nil, nil
	if len(m.variants) > 0 {
		variant := m.variants[m.cursor]
		if rounds, err := m.store.RecentRounds(variant, maxRounds); err == nil {
			m.rounds = rounds
		}
		if stats, err := m.store.Stats(variant); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (m *RoundsModel) updateTableRows() {
	m.table.SetRows(roundRows(m.rounds))
	m.table.GotoTop()
}

func roundRows(rounds []storage.RoundRecord) []table.Row {
	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Round),
			r.Outcome,
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%d", r.Eaten),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the journal browser.
func (m RoundsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal browser.
func (m RoundsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor + 1) % len(m.variants)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor - 1 + len(m.variants)) % len(m.variants)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Variant returns the selected variant, empty when the journal is empty.
func (m RoundsModel) Variant() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.cursor]
}

// View renders the journal browser.
func (m RoundsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "ROUND JOURNAL"
	if v := m.Variant(); v != "" {
		title = fmt.Sprintf("ROUND JOURNAL - %s", v)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if len(m.rounds) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No rounds recorded yet.\nPlay a round to fill the journal!")
		b.WriteString(frameStyle.Render(empty))
	} else {
		b.WriteString(frameStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	if s := m.stats; s != nil && s.Rounds > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf(
			"rounds %d  won %d  died %d  restarted %d  best %d  avg %.1f  apples %d",
			s.Rounds, s.Won, s.Died, s.Restarted, s.BestLength, s.AvgLength, s.TotalEaten)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunRounds runs the journal browser.
func RunRounds(store *storage.Store, start string, width, height int) error {
	model, err := NewRoundsModel(store, start, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
