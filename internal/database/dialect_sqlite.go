package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect stores state in a local file
type SQLiteDialect struct{}

func NewSQLiteDialect() *SQLiteDialect { return &SQLiteDialect{} }

func (d *SQLiteDialect) DriverName() string { return "sqlite3" }

// DSN waits on a locked database instead of failing with SQLITE_BUSY
func (d *SQLiteDialect) DSN(config DialectConfig) string {
	return config.Path + "?_busy_timeout=5000"
}

func (d *SQLiteDialect) RewriteQuery(query string) string { return query }

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	poolLimits{maxOpen: 4, maxIdle: 2}.apply(db)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL: %w", err)
	}
	return nil
}

func (d *SQLiteDialect) MigrationsSubdir() string { return "sqlite" }

func (d *SQLiteDialect) CreateMigrationsTableQuery() string {
	return `CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
}

func (d *SQLiteDialect) UpsertQuery(table, keyColumn string, columns ...string) string {
	return onConflictUpsert(table, keyColumn, columns)
}
