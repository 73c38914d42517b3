package shared

import (
	"testing"
)

func TestMigrationRunner(t *testing.T) {
	t.Run("parseMigrationName", func(t *testing.T) {
		tc := []struct {
			name    string
			version int
			up      bool
			ok      bool
		}{
			{name: "0000_create_blobs_up.sql", version: 0, up: true, ok: true},
			{name: "0012_add_index_down.sql", version: 12, up: false, ok: true},
			{name: "0001_side.sql", ok: false},
			{name: "readme.md", ok: false},
			{name: "abc_up.sql", ok: false},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				version, up, ok := parseMigrationName(tt.name)
				if ok != tt.ok {
					t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
				}
				if ok && (version != tt.version || up != tt.up) {
					t.Errorf("expected (%d, %v), got (%d, %v)", tt.version, tt.up, version, up)
				}
			})
		}
	})

	t.Run("loadMigrations", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("failed to load migrations: %v", err)
		}

		if len(migrations) == 0 {
			t.Fatal("expected at least one migration")
		}

		for i := 1; i < len(migrations); i++ {
			if migrations[i].Version <= migrations[i-1].Version {
				t.Errorf("migrations not sorted: version %d comes after %d", migrations[i].Version, migrations[i-1].Version)
			}
		}

		for _, m := range migrations {
			if m.Up == "" {
				t.Errorf("migration version %d missing up SQL", m.Version)
			}
			if m.Down == "" {
				t.Errorf("migration version %d missing down SQL", m.Version)
			}
		}
	})

	t.Run("RunMigrations And Rollback", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()
		ConfigureDatabase(db, 1, 1)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("failed to query schema_migrations: %v", err)
		}
		if count == 0 {
			t.Error("expected at least one migration to be applied")
		}

		if _, err := db.Exec("SELECT 1 FROM blobs LIMIT 1"); err != nil {
			t.Errorf("blobs table should exist after migrations: %v", err)
		}

		if err := rollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback migration: %v", err)
		}

		var newCount int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&newCount); err != nil {
			t.Fatalf("failed to query schema_migrations after rollback: %v", err)
		}
		if newCount >= count {
			t.Errorf("expected migration count to decrease after rollback, got %d (was %d)", newCount, count)
		}

		if _, err := db.Exec("SELECT 1 FROM blobs LIMIT 1"); err == nil {
			t.Error("blobs table should be gone after rollback")
		}

		if err := rollbackMigration(db); err == nil {
			t.Error("expected error rolling back with nothing applied")
		}
	})

	t.Run("Idempotent Migrations", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()
		ConfigureDatabase(db, 1, 1)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations first time: %v", err)
		}

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations second time: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("failed to query schema_migrations: %v", err)
		}

		migrations, _ := loadMigrations()
		if count != len(migrations) {
			t.Errorf("expected %d migrations to be applied, got %d", len(migrations), count)
		}
	})

	t.Run("OpenStore", func(t *testing.T) {
		db, err := OpenStore(DatabaseConfig{Path: ":memory:"})
		if err != nil {
			t.Fatalf("OpenStore failed: %v", err)
		}
		defer db.Close()

		if _, err := db.Exec("INSERT INTO blobs (key, value) VALUES ('k', 'v')"); err != nil {
			t.Errorf("expected blobs table to be usable: %v", err)
		}
	})
}
