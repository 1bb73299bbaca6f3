package database

import (
	"database/sql"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect talks to MySQL or MariaDB. It shares SQLite's ? placeholders.
type MySQLDialect struct{}

func NewMySQLDialect() *MySQLDialect { return &MySQLDialect{} }

func (d *MySQLDialect) DriverName() string { return "mysql" }

func (d *MySQLDialect) DSN(config DialectConfig) string { return config.URL }

func (d *MySQLDialect) RewriteQuery(query string) string { return query }

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	poolLimits{maxOpen: 16, maxIdle: 4}.apply(db)
	return nil
}

func (d *MySQLDialect) MigrationsSubdir() string { return "mysql" }

func (d *MySQLDialect) CreateMigrationsTableQuery() string {
	return `CREATE TABLE IF NOT EXISTS schema_migrations (
		filename VARCHAR(255) PRIMARY KEY,
		applied_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
	)`
}

// UpsertQuery uses ON DUPLICATE KEY since MySQL has no ON CONFLICT
func (d *MySQLDialect) UpsertQuery(table, keyColumn string, columns ...string) string {
	sets := make([]string, len(columns))
	for i, c := range columns {
		sets[i] = c + " = VALUES(" + c + ")"
	}
	return insertPrefix(table, keyColumn, columns) +
		" ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
}
