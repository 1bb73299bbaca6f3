package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(ctx, ""); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	var name string
	err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", "kv_entries").Scan(&name)
	if err != nil {
		t.Errorf("Table kv_entries not found: %v", err)
	}

	// Running again must not re-apply anything
	if err := db.RunMigrations(ctx, ""); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 recorded migration, got %d", count)
	}
}

func TestMigrationsFromDirectory(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sqlite"), 0o755); err != nil {
		t.Fatal(err)
	}
	migration := "CREATE TABLE extra_a (id INTEGER);\nCREATE TABLE extra_b (id INTEGER);\n"
	if err := os.WriteFile(filepath.Join(dir, "sqlite", "001_extra.sql"), []byte(migration), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "dir.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(ctx, dir); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	for _, table := range []string{"extra_a", "extra_b"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	upsert := db.Dialect.UpsertQuery("kv_entries", "entry_key", "entry_value")

	err := db.WithTx(ctx, func(tx *Tx) error {
		_, err := tx.ExecContext(ctx, upsert, "committed", "1")
		return err
	})
	if err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	errBoom := errors.New("boom")
	err = db.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.ExecContext(ctx, upsert, "rolled_back", "1"); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("Expected errBoom, got %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv_entries").Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 row after rollback, got %d", count)
	}

	// upsert overwrites
	if _, err := db.ExecContext(ctx, upsert, "committed", "2"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	var value string
	if err := db.QueryRowContext(ctx, "SELECT entry_value FROM kv_entries WHERE entry_key = ?", "committed").Scan(&value); err != nil {
		t.Fatalf("Failed to read value: %v", err)
	}
	if value != "2" {
		t.Errorf("Expected upserted value 2, got %s", value)
	}
}

// TestConcurrentAccess tests concurrent database access
func TestConcurrentAccess(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO kv_entries (entry_key, entry_value) VALUES (?, ?)", "shared", "value")
	if err != nil {
		t.Fatalf("Failed to create test row: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var value string
			err := db.QueryRowContext(ctx, "SELECT entry_value FROM kv_entries WHERE entry_key = ?", "shared").Scan(&value)
			if err != nil {
				t.Errorf("Concurrent read failed: %v", err)
			}
			if value != "value" {
				t.Errorf("Expected 'value', got '%s'", value)
			}
		}()
	}
	wg.Wait()
}

func TestSQLiteConnectionSettings(t *testing.T) {
	db := openTestDB(t)

	if got := db.Stats().MaxOpenConnections; got != 4 {
		t.Errorf("MaxOpenConnections = %d, want 4", got)
	}

	var mode string
	if err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("Failed to read journal mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}
