package database

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// Dialect hides the differences between the supported SQL engines. Queries
// are written with ? placeholders and rewritten per engine.
type Dialect interface {
	DriverName() string
	DSN(config DialectConfig) string
	RewriteQuery(query string) string
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir names the folder holding this engine's migrations
	MigrationsSubdir() string
	CreateMigrationsTableQuery() string

	// UpsertQuery returns an INSERT that overwrites the non-key columns when
	// the key already exists
	UpsertQuery(table, keyColumn string, columns ...string) string
}

// DialectConfig locates the database: Path for SQLite, URL otherwise
type DialectConfig struct {
	Path string
	URL  string
}

// poolLimits sizes the connection pool. The kv table sees short single-row
// statements, so a small pool is enough.
type poolLimits struct {
	maxOpen int
	maxIdle int
}

func (p poolLimits) apply(db *sql.DB) {
	db.SetMaxOpenConns(p.maxOpen)
	db.SetMaxIdleConns(p.maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)
}

// numberPlaceholders turns ? into $1, $2, ... outside quoted literals
func numberPlaceholders(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func insertPrefix(table, keyColumn string, columns []string) string {
	all := append([]string{keyColumn}, columns...)
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(all)), ", ")
	return "INSERT INTO " + table + " (" + strings.Join(all, ", ") + ") VALUES (" + marks + ")"
}

// onConflictUpsert is the ON CONFLICT form shared by SQLite and PostgreSQL
func onConflictUpsert(table, keyColumn string, columns []string) string {
	sets := make([]string, len(columns))
	for i, c := range columns {
		sets[i] = c + " = excluded." + c
	}
	return insertPrefix(table, keyColumn, columns) +
		" ON CONFLICT (" + keyColumn + ") DO UPDATE SET " + strings.Join(sets, ", ")
}
