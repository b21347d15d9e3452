package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daybook-app/daybook/internal/cli"
	"github.com/daybook-app/daybook/internal/tracker"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder

	loc, err := tracker.LoadLocation(m.timezone)
	if err != nil {
		loc = nil
	}
	title := "Daybook"
	if loc != nil {
		title = fmt.Sprintf("Daybook — %s", m.window.TodayStart.In(loc).Format("Monday, January 2"))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("No items yet. Add one with 'item add'."))
		b.WriteString("\n")
	} else {
		for i, r := range m.rows {
			cursor := "  "
			nameStyle := lipgloss.NewStyle()
			if i == m.cursor {
				cursor = "> "
				nameStyle = selectedStyle
			}
			line := fmt.Sprintf("%s%-20s %-14s ytd %-8s today %-8s %s",
				cursor,
				nameStyle.Render(truncate(r.item.Name, 20)),
				dimStyle.Render(cli.FormatItemType(r.item)),
				cli.FormatValue(r.item.Type, r.buckets.Ytd, m.timezone),
				cli.FormatValue(r.item.Type, r.buckets.Today, m.timezone),
				cli.FormatDelta(r.item.Type, r.item.Direction, r.buckets),
			)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
