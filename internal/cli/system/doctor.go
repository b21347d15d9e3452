package system

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/cli"
	"github.com/daybook-app/daybook/internal/keyring"
	"github.com/daybook-app/daybook/internal/storage/postgres"
	"github.com/daybook-app/daybook/internal/storage/sqlite"
	"github.com/daybook-app/daybook/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkTimezoneSetting(ctx); err != nil {
			fmt.Printf("❌ Timezone setting: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timezone setting: OK\n")
		}
	} else {
		fmt.Printf("⊘ Timezone setting: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkItemIntegrity(ctx); err != nil {
			fmt.Printf("❌ Item integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Item integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Item integrity: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkOrphanedLogs(ctx); err != nil {
			fmt.Printf("❌ Log integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Log integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Log integrity: SKIPPED (database not reachable)\n")
	}

	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable; postgres credentials must come from the environment\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	db := storeDB(ctx)
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkTimezoneSetting(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.Timezone != "" && !validation.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("configured timezone %q does not resolve", settings.Timezone)
	}
	return nil
}

func checkItemIntegrity(ctx *cli.Context) error {
	db := storeDB(ctx)
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	// Duplicate live names per owner would break name lookup.
	var dupes int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM (
			SELECT owner_id, LOWER(name)
			FROM items
			WHERE deleted_at IS NULL
			GROUP BY owner_id, LOWER(name)
			HAVING COUNT(*) > 1
		) d
	`).Scan(&dupes)
	if err != nil {
		return fmt.Errorf("failed to check duplicate item names: %w", err)
	}
	if dupes > 0 {
		return fmt.Errorf("found %d duplicate live item name(s)", dupes)
	}
	return nil
}

func checkOrphanedLogs(ctx *cli.Context) error {
	db := storeDB(ctx)
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var orphaned int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM logs l
		LEFT JOIN items i ON l.item_id = i.item_id
		WHERE i.item_id IS NULL
	`).Scan(&orphaned)
	if err != nil {
		return fmt.Errorf("failed to check orphaned logs: %w", err)
	}
	if orphaned > 0 {
		return fmt.Errorf("found %d log(s) referencing missing items", orphaned)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func storeDB(ctx *cli.Context) *sql.DB {
	switch s := ctx.Store.(type) {
	case *sqlite.Store:
		return s.DB()
	case *postgres.Store:
		return s.DB()
	default:
		return nil
	}
}
