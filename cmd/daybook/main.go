package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/daybook-app/daybook/internal/cli"
	"github.com/daybook-app/daybook/internal/cli/items"
	"github.com/daybook-app/daybook/internal/cli/settings"
	"github.com/daybook-app/daybook/internal/cli/system"
	"github.com/daybook-app/daybook/internal/constants"
	apperrors "github.com/daybook-app/daybook/internal/errors"
	"github.com/daybook-app/daybook/internal/journal"
	"github.com/daybook-app/daybook/internal/keyring"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/storage"
	"github.com/daybook-app/daybook/internal/storage/postgres"
	"github.com/daybook-app/daybook/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use the OS keyring or the DAYBOOK_DB_CONNECTION environment variable." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize daybook storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Day    cli.DayCmd       `cmd:"" help:"Show today's values against yesterday's."`
	Log    cli.LogCmd       `cmd:"" help:"Record a value against an item for today."`
	Item   struct {
		Add     items.ItemAddCmd     `cmd:"" help:"Add a new tracked item."`
		List    items.ItemListCmd    `cmd:"" help:"List tracked items."`
		Show    items.ItemShowCmd    `cmd:"" help:"Show an item's recent history."`
		Rename  items.ItemRenameCmd  `cmd:"" help:"Rename a tracked item."`
		Delete  items.ItemDeleteCmd  `cmd:"" help:"Soft-delete a tracked item."`
		Restore items.ItemRestoreCmd `cmd:"" help:"Restore a deleted item by id."`
	} `cmd:"" help:"Manage tracked items."`
	Settings struct {
		Show            settings.SettingsShowCmd    `cmd:"" help:"Show current settings." default:"1"`
		Set             settings.SettingsSetCmd     `cmd:"" help:"Set timezone or display name."`
		SetConnection   settings.SetConnectionCmd   `cmd:"" name:"set-connection" help:"Store a postgres connection string in the OS keyring."`
		ClearConnection settings.ClearConnectionCmd `cmd:"" name:"clear-connection" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit and metric tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := expandPath(CLI.Config)

	logDir := filepath.Dir(configPath)
	if storage.IsPostgresConnString(configPath) {
		if home, err := os.UserHomeDir(); err == nil {
			logDir = filepath.Join(home, ".config", constants.AppName)
		}
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store, err := resolveStore(configPath)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:   store,
		Journal: journal.New(store),
		Debug:   CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// resolveStore picks the backend. An explicit postgres --config wins, then the
// DAYBOOK_DB_CONNECTION environment variable, then the OS keyring, and
// finally the local sqlite file.
func resolveStore(config string) (storage.Provider, error) {
	if storage.IsPostgresConnString(config) {
		if storage.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("connection strings with embedded credentials are not allowed; store the full string with '%s settings set-connection' or export DAYBOOK_DB_CONNECTION", constants.AppName)
		}
		return postgres.NewStore(config), nil
	}

	if env := os.Getenv("DAYBOOK_DB_CONNECTION"); env != "" {
		if !storage.IsPostgresConnString(env) {
			return nil, fmt.Errorf("DAYBOOK_DB_CONNECTION is not a postgres connection string")
		}
		return postgres.NewStore(env), nil
	}

	if connStr, err := keyring.GetConnectionString(); err == nil {
		if storage.IsPostgresConnString(connStr) {
			return postgres.NewStore(connStr), nil
		}
		logger.Warn("Ignoring non-postgres connection string found in keyring")
	}

	return sqlite.NewStore(config), nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
