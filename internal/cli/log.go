package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/daybook-app/daybook/internal/constants"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/tracker"
	"github.com/daybook-app/daybook/internal/validation"
)

type LogCmd struct {
	Name     string `arg:"" help:"Item name."`
	Value    string `arg:"" optional:"" help:"Value to record: seconds or HH:MM for duration items, a count for amount items."`
	Timezone string `help:"Override the configured timezone for this log."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.Journal.EnsureUser()
	if err != nil {
		return err
	}

	item, err := ctx.Store.GetItemByName(user.UserID, c.Name)
	if err != nil {
		return fmt.Errorf("item %q not found", c.Name)
	}

	supplied, err := ParseValue(item.Type, c.Value)
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

	res, err := ctx.Journal.Log(user.UserID, item, supplied, timezone, time.Now())
	if err != nil {
		return err
	}

	verb := "Logged"
	if !res.Created {
		verb = "Updated"
	}
	fmt.Printf("%s %q: %s\n", verb, item.Name, describeEntry(item.Type, res.Entry, timezone))
	return nil
}

// ParseValue interprets a user-supplied value for the item's type. Duration
// accepts raw seconds or HH:MM; amount accepts a count. time and consistency
// items take no value.
func ParseValue(itemType models.ItemType, raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}

	switch itemType {
	case models.ItemTime, models.ItemConsistency:
		return nil, fmt.Errorf("%s items do not take a value", itemType)
	case models.ItemDuration:
		if strings.Contains(raw, ":") {
			seconds, ok := tracker.ClockToSeconds(raw)
			if !ok {
				return nil, fmt.Errorf("invalid duration %q (expected HH:MM or seconds)", raw)
			}
			return &seconds, nil
		}
		seconds, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || seconds < 0 {
			return nil, fmt.Errorf("invalid duration %q (expected HH:MM or seconds)", raw)
		}
		return &seconds, nil
	case models.ItemAmount:
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid amount %q (expected a non-negative count)", raw)
		}
		return &count, nil
	default:
		return nil, fmt.Errorf("%w: %q", tracker.ErrUnsupportedItemType, itemType)
	}
}

func describeEntry(itemType models.ItemType, entry models.LogEntry, timezone string) string {
	switch itemType {
	case models.ItemTime:
		loc, err := tracker.LoadLocation(timezone)
		if err != nil {
			loc = time.UTC
		}
		return entry.CreatedAt.In(loc).Format(constants.TimeFormat)
	case models.ItemDuration:
		if entry.Value == nil {
			return "—"
		}
		return tracker.SecondsToClock(*entry.Value)
	case models.ItemAmount:
		if entry.Value == nil {
			return "—"
		}
		return fmt.Sprintf("count %d", *entry.Value)
	case models.ItemConsistency:
		return "done for today"
	default:
		return ""
	}
}
