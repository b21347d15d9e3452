package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/daybook-app/daybook/internal/tracker"
	"github.com/daybook-app/daybook/internal/validation"
)

type DayCmd struct {
	Timezone string `help:"Override the configured timezone for this view."`
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.Journal.EnsureUser()
	if err != nil {
		return err
	}

	timezone := c.Timezone
	if timezone == "" {
		timezone = ctx.Journal.Timezone()
	}
	if !validation.ValidateTimezone(timezone) {
		return fmt.Errorf("%w: %q", tracker.ErrInvalidTimezone, timezone)
	}

	items, window, err := ctx.Journal.Snapshot(user.UserID, timezone, time.Now())
	if err != nil {
		return err
	}

	loc, err := tracker.LoadLocation(timezone)
	if err != nil {
		return err
	}
	fmt.Println(headerStyle.Render(window.TodayStart.In(loc).Format("Monday, January 2")))

	if len(items) == 0 {
		fmt.Println(mutedStyle.Render("No items yet. Add one with 'item add'."))
		return nil
	}

	for _, agg := range items {
		buckets := agg.Buckets
		fmt.Printf("  %-20s %-14s ytd %-8s today %-8s %s\n",
			agg.Item.Name,
			mutedStyle.Render(FormatItemType(agg.Item)),
			FormatValue(agg.Item.Type, buckets.Ytd, timezone),
			FormatValue(agg.Item.Type, buckets.Today, timezone),
			FormatDelta(agg.Item.Type, agg.Item.Direction, buckets),
		)
	}
	return nil
}
