package items

import (
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/cli"
	"github.com/daybook-app/daybook/internal/constants"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/tracker"
)

type ItemShowCmd struct {
	Name string `arg:"" help:"Item name."`
	Days int    `help:"How many days of logs to show." default:"7"`
}

func (c *ItemShowCmd) Run(ctx *cli.Context) error {
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

	timezone := ctx.Journal.Timezone()
	loc, err := tracker.LoadLocation(timezone)
	if err != nil {
		return err
	}

	fmt.Printf("%s (#%d, %s)\n", item.Name, item.ItemID, cli.FormatItemType(item))
	fmt.Printf("Created: %s\n\n", item.CreatedAt.In(loc).Format(constants.DateFormat))

	since := time.Now().In(loc).AddDate(0, 0, -c.Days)
	logs, err := ctx.Store.GetLogsForItem(item.ItemID, since)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Printf("No logs in the last %d days.\n", c.Days)
		return nil
	}

	for _, entry := range logs {
		day := entry.CreatedAt.In(loc).Format(constants.DateFormat)
		e := entry
		fmt.Printf("%s  %s\n", day, cli.FormatValue(item.Type, &e, timezone))
	}

	// Consistency items get a tally of recorded days.
	if item.Type == models.ItemConsistency {
		fmt.Printf("\nRecorded %d of the last %d days\n", len(logs), c.Days)
	}
	return nil
}
