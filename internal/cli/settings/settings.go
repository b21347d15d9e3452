package settings

import (
	"fmt"

	"github.com/daybook-app/daybook/internal/cli"
	"github.com/daybook-app/daybook/internal/keyring"
	"github.com/daybook-app/daybook/internal/storage"
	"github.com/daybook-app/daybook/internal/validation"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	timezone := settings.Timezone
	if timezone == "" {
		timezone = "Local"
	}
	name := settings.DisplayName
	if name == "" {
		name = "(not set)"
	}

	fmt.Printf("Timezone:     %s\n", timezone)
	fmt.Printf("Display name: %s\n", name)
	fmt.Printf("Database:     %s\n", ctx.Store.GetConfigPath())
	return nil
}

type SettingsSetCmd struct {
	Timezone string `help:"IANA zone name, e.g. 'America/New_York', or 'Local'."`
	Name     string `help:"Display name used when provisioning the user."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	if c.Timezone == "" && c.Name == "" {
		return fmt.Errorf("nothing to set; pass --timezone and/or --name")
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Timezone != "" {
		if !validation.ValidateTimezone(c.Timezone) {
			return fmt.Errorf("unknown timezone %q", c.Timezone)
		}
		settings.Timezone = c.Timezone
	}
	if c.Name != "" {
		settings.DisplayName = c.Name
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("Settings saved.")
	return nil
}

type SetConnectionCmd struct {
	ConnectionString string `arg:"" help:"Postgres connection string (URL or DSN)."`
}

func (c *SetConnectionCmd) Run(ctx *cli.Context) error {
	if !storage.IsPostgresConnString(c.ConnectionString) {
		return fmt.Errorf("not a postgres connection string")
	}
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in the OS keyring.")
	return nil
}

type ClearConnectionCmd struct{}

func (c *ClearConnectionCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from the OS keyring.")
	return nil
}
