package items

import (
	"errors"
	"fmt"

	"github.com/daybook-app/daybook/internal/cli"
	"github.com/daybook-app/daybook/internal/constants"
	"github.com/daybook-app/daybook/internal/storage"
	"github.com/daybook-app/daybook/internal/validation"
)

type ItemRenameCmd struct {
	Name    string `arg:"" help:"Current item name."`
	NewName string `arg:"" help:"New item name."`
}

func (c *ItemRenameCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := validation.ValidateItemName(c.NewName); err != nil {
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

	if _, err := ctx.Store.GetItemByName(user.UserID, c.NewName); err == nil {
		return fmt.Errorf("item with name %q already exists", c.NewName)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if err := ctx.Store.RenameItem(item.ItemID, c.NewName); err != nil {
		return err
	}
	fmt.Printf("Renamed %q to %q\n", c.Name, c.NewName)
	return nil
}

type ItemDeleteCmd struct {
	Name string `arg:"" help:"Item name."`
}

func (c *ItemDeleteCmd) Run(ctx *cli.Context) error {
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

	// Soft delete: the item disappears from views, its logs stay.
	if err := ctx.Store.SoftDeleteItem(item.ItemID); err != nil {
		return err
	}
	fmt.Printf("Deleted item %q (logs retained, restore with '%s item restore %d')\n", c.Name, constants.AppName, item.ItemID)
	return nil
}

type ItemRestoreCmd struct {
	ID int64 `arg:"" help:"Item ID (shown by 'item list --deleted')."`
}

func (c *ItemRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.Journal.EnsureUser()
	if err != nil {
		return err
	}

	item, err := ctx.Store.GetItem(c.ID)
	if err != nil {
		return err
	}
	if item.OwnerID != user.UserID {
		return fmt.Errorf("%w: item %d", storage.ErrForbidden, c.ID)
	}

	if err := ctx.Store.RestoreItem(c.ID); err != nil {
		return err
	}
	fmt.Printf("Restored item %q\n", item.Name)
	return nil
}
