package database

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// PostgresDialect talks to PostgreSQL through lib/pq
type PostgresDialect struct{}

func NewPostgresDialect() *PostgresDialect { return &PostgresDialect{} }

func (d *PostgresDialect) DriverName() string { return "postgres" }

func (d *PostgresDialect) DSN(config DialectConfig) string { return config.URL }

func (d *PostgresDialect) RewriteQuery(query string) string { return numberPlaceholders(query) }

func (d *PostgresDialect) ConfigureConnection(db *sql.DB) error {
	poolLimits{maxOpen: 16, maxIdle: 4}.apply(db)
	return nil
}

func (d *PostgresDialect) MigrationsSubdir() string { return "postgres" }

func (d *PostgresDialect) CreateMigrationsTableQuery() string {
	return `CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`
}

func (d *PostgresDialect) UpsertQuery(table, keyColumn string, columns ...string) string {
	return onConflictUpsert(table, keyColumn, columns)
}
