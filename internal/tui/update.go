package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/daybook-app/daybook/internal/cli"
	"github.com/daybook-app/daybook/internal/models"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.form == nil {
			return m.handleKey(msg)
		}
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Refresh):
		m.err = m.refresh()
		if m.err == nil {
			m.status = "Refreshed."
		}

	case key.Matches(msg, m.keys.Log):
		item := m.selected()
		if item == nil {
			break
		}
		switch item.Type {
		case models.ItemTime, models.ItemConsistency:
			m.logItem(*item, nil)
		default:
			m.logging = item
			m.formValue = ""
			m.form = newValueForm(*item, &m.formValue)
			return m, m.form.Init()
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		item := *m.logging
		m.form = nil
		m.logging = nil
		supplied, err := cli.ParseValue(item.Type, m.formValue)
		if err != nil {
			m.err = err
			m.status = ""
			return m, nil
		}
		m.logItem(item, supplied)
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.logging = nil
		m.status = "Cancelled."
		return m, nil
	}
	return m, cmd
}

func (m *Model) logItem(item models.TrackedItem, supplied *int64) {
	res, err := m.journal.Log(m.user.UserID, item, supplied, m.timezone, time.Now())
	if err != nil {
		m.err = err
		m.status = ""
		return
	}

	m.err = m.refresh()
	verb := "Logged"
	if !res.Created {
		verb = "Updated"
	}
	m.status = fmt.Sprintf("%s %q.", verb, item.Name)
}

func newValueForm(item models.TrackedItem, value *string) *huh.Form {
	var prompt string
	switch item.Type {
	case models.ItemDuration:
		prompt = "Duration (HH:MM or seconds):"
	case models.ItemAmount:
		prompt = "Count (blank to add one):"
	default:
		prompt = "Value:"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(item.Name).
				Description(prompt).
				Value(value),
		),
	)
}
