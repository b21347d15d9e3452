package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/daybook-app/daybook/internal/constants"
	"github.com/daybook-app/daybook/internal/journal"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/storage"
	"github.com/daybook-app/daybook/internal/tracker"
)

// Context carries the shared collaborators into every command.
type Context struct {
	Store   storage.Provider
	Journal *journal.Journal
	Debug   bool
}

var (
	favorableStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	unfavorableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// FormatValue renders a bucket's value for one item type. An absent entry
// renders as a muted dash.
func FormatValue(itemType models.ItemType, entry *models.LogEntry, timezone string) string {
	if entry == nil {
		return mutedStyle.Render("—")
	}

	switch itemType {
	case models.ItemTime:
		loc, err := tracker.LoadLocation(timezone)
		if err != nil {
			loc = time.UTC
		}
		return entry.CreatedAt.In(loc).Format(constants.TimeFormat)
	case models.ItemDuration:
		if entry.Value == nil {
			return mutedStyle.Render("—")
		}
		return tracker.SecondsToClock(*entry.Value)
	case models.ItemAmount:
		if entry.Value == nil {
			return mutedStyle.Render("—")
		}
		return fmt.Sprintf("%d", *entry.Value)
	case models.ItemConsistency:
		return "done"
	default:
		return mutedStyle.Render("?")
	}
}

// FormatDelta renders the yesterday/today comparison for one item.
func FormatDelta(itemType models.ItemType, direction models.Direction, b tracker.Buckets) string {
	delta, err := tracker.ComputeDelta(itemType, direction, b)
	if err != nil {
		return mutedStyle.Render("?")
	}

	switch delta.Kind {
	case tracker.DeltaUnavailable:
		return mutedStyle.Render("—")
	case tracker.DeltaNeutral:
		if b.Ytd != nil && b.Today != nil {
			return favorableStyle.Render("kept up")
		}
		if b.Today != nil {
			return favorableStyle.Render("done today")
		}
		return mutedStyle.Render("not yet today")
	case tracker.DeltaClock:
		return mutedStyle.Render("see times")
	case tracker.DeltaSigned:
		return renderSigned(itemType, delta)
	default:
		return mutedStyle.Render("?")
	}
}

func renderSigned(itemType models.ItemType, delta tracker.DeltaResult) string {
	magnitude := delta.Magnitude
	if magnitude < 0 {
		magnitude = -magnitude
	}

	var text string
	if itemType == models.ItemDuration {
		text = tracker.SecondsToClock(magnitude)
	} else {
		text = fmt.Sprintf("%d", magnitude)
	}

	sign := "+"
	if delta.Magnitude < 0 {
		sign = "-"
	}
	rendered := sign + text
	if delta.Favorable {
		return favorableStyle.Render(rendered)
	}
	return unfavorableStyle.Render(rendered)
}

// FormatItemType renders the type with its direction, e.g. "duration ↑".
func FormatItemType(item models.TrackedItem) string {
	switch item.Direction {
	case models.DirectionIncrease:
		return fmt.Sprintf("%s ↑", item.Type)
	case models.DirectionDecrease:
		return fmt.Sprintf("%s ↓", item.Type)
	default:
		return string(item.Type)
	}
}
