package items

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/daybook-app/daybook/internal/cli"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/storage"
	"github.com/daybook-app/daybook/internal/validation"
)

type ItemAddCmd struct {
	Name      string `arg:"" optional:"" help:"Item name."`
	Type      string `short:"t" help:"Item type (time|duration|amount|consistency)."`
	Direction string `short:"d" help:"Whether an increase or decrease is good (increase|decrease)."`
}

func (c *ItemAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Fall back to an interactive form when the name or type is missing.
	if c.Name == "" || c.Type == "" {
		if err := c.promptMissing(); err != nil {
			return err
		}
	}

	if err := validation.ValidateItemName(c.Name); err != nil {
		return err
	}
	itemType, err := validation.ParseItemType(c.Type)
	if err != nil {
		return err
	}
	direction, err := validation.ParseDirection(c.Direction)
	if err != nil {
		return err
	}
	if itemType == models.ItemConsistency {
		// Consistency items have no directional preference.
		direction = models.DirectionNone
	}

	user, err := ctx.Journal.EnsureUser()
	if err != nil {
		return err
	}

	// Names are unique per owner, case-insensitively, among live items.
	if _, err := ctx.Store.GetItemByName(user.UserID, c.Name); err == nil {
		return fmt.Errorf("item with name %q already exists", c.Name)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	id, err := ctx.Store.AddItem(models.TrackedItem{
		OwnerID:   user.UserID,
		Type:      itemType,
		Direction: direction,
		Name:      c.Name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s item: %s (#%d)\n", itemType, c.Name, id)
	return nil
}

func (c *ItemAddCmd) promptMissing() error {
	var fields []huh.Field
	if c.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Item name").
			Value(&c.Name))
	}
	if c.Type == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Item type").
			Options(
				huh.NewOption("time — record a moment of day", "time"),
				huh.NewOption("duration — record elapsed time", "duration"),
				huh.NewOption("amount — count something", "amount"),
				huh.NewOption("consistency — did it happen today", "consistency"),
			).
			Value(&c.Type))
	}
	if c.Direction == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Which way is good?").
			Options(
				huh.NewOption("more is better", "increase"),
				huh.NewOption("less is better", "decrease"),
				huh.NewOption("no preference", ""),
			).
			Value(&c.Direction))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
