package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_create_things.sql": {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
		"002_add_name.sql":      {Data: []byte("ALTER TABLE things ADD COLUMN name TEXT;")},
	}

	runner := NewRunner(db, fsys)
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Re-running is a no-op.
	applied, err = runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second apply touched %d migrations, want 0", applied)
	}

	if _, err := db.Exec("INSERT INTO things (name) VALUES ('x')"); err != nil {
		t.Errorf("migrated schema unusable: %v", err)
	}
}

func TestApplyFailedMigrationRollsBack(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"002_broken.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")}, // duplicate table
	}

	runner := NewRunner(db, fsys)
	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("Apply() should fail on broken migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 1 {
		t.Errorf("version after failure = %d, want 1", version)
	}
}

func TestReadMigrationFilesValidation(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			name: "missing underscore",
			fsys: fstest.MapFS{"001.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "non-numeric version",
			fsys: fstest.MapFS{"abc_init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "version zero",
			fsys: fstest.MapFS{"000_init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "duplicate versions",
			fsys: fstest.MapFS{
				"001_a.sql": {Data: []byte("SELECT 1;")},
				"001_b.sql": {Data: []byte("SELECT 1;")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRunner(db, tt.fsys).ReadMigrationFiles(); err == nil {
				t.Error("ReadMigrationFiles() should reject " + tt.name)
			}
		})
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
	}

	runner := NewRunner(db, fsys)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Pretend a newer binary wrote version 5.
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (5)"); err != nil {
		t.Fatal(err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() should reject a newer schema version")
	}
}
