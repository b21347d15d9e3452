package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/daybook-app/daybook/internal/journal"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/tracker"
)

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Log     key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Log, k.Refresh, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Log, k.Refresh},
		{k.Help, k.Quit},
	}
}

var defaultKeys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Log: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter/l", "log selected"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type row struct {
	item    models.TrackedItem
	buckets tracker.Buckets
}

type Model struct {
	journal  *journal.Journal
	user     models.User
	timezone string

	keys KeyMap
	help help.Model

	rows   []row
	window tracker.DayWindow
	cursor int

	form      *huh.Form
	formValue string
	logging   *models.TrackedItem

	status   string
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(j *journal.Journal) (Model, error) {
	user, err := j.EnsureUser()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		journal:  j,
		user:     user,
		timezone: j.Timezone(),
		keys:     defaultKeys,
		help:     help.New(),
	}
	if err := m.refresh(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) refresh() error {
	items, window, err := m.journal.Snapshot(m.user.UserID, m.timezone, time.Now())
	if err != nil {
		return err
	}

	rows := make([]row, 0, len(items))
	for _, agg := range items {
		rows = append(rows, row{
			item:    agg.Item,
			buckets: agg.Buckets,
		})
	}
	m.rows = rows
	m.window = window
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return nil
}

func (m *Model) selected() *models.TrackedItem {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor].item
}
