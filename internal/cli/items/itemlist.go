package items

import (
	"fmt"

	"github.com/daybook-app/daybook/internal/cli"
)

type ItemListCmd struct {
	Deleted bool `help:"Include soft-deleted items."`
}

func (c *ItemListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.Journal.EnsureUser()
	if err != nil {
		return err
	}

	items, err := ctx.Store.GetItemsByOwner(user.UserID, c.Deleted)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No items found.")
		return nil
	}

	for _, item := range items {
		status := ""
		if item.Deleted() {
			status = " [DELETED]"
		}
		fmt.Printf("#%-4d %-30s %s%s\n", item.ItemID, item.Name, cli.FormatItemType(item), status)
	}
	return nil
}
