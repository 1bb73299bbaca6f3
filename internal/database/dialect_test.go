package database

import (
	"testing"
)

func TestDialectBasics(t *testing.T) {
	tests := []struct {
		name       string
		dialect    Dialect
		driver     string
		migrations string
	}{
		{name: "SQLite", dialect: NewSQLiteDialect(), driver: "sqlite3", migrations: "sqlite"},
		{name: "PostgreSQL", dialect: NewPostgresDialect(), driver: "postgres", migrations: "postgres"},
		{name: "MySQL", dialect: NewMySQLDialect(), driver: "mysql", migrations: "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driver {
				t.Errorf("DriverName() = %v, want %v", got, tt.driver)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.migrations {
				t.Errorf("MigrationsSubdir() = %v, want %v", got, tt.migrations)
			}
		})
	}
}

func TestNewDialect(t *testing.T) {
	tests := []struct {
		databaseType string
		driver       string
		wantErr      bool
	}{
		{databaseType: "", driver: "sqlite3"},
		{databaseType: "SQLite3", driver: "sqlite3"},
		{databaseType: "postgresql", driver: "postgres"},
		{databaseType: "mysql", driver: "mysql"},
		{databaseType: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.databaseType, func(t *testing.T) {
			dialect, cfg, err := NewDialect(tt.databaseType, "game.db", "postgres://localhost/game")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unsupported type")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dialect.DriverName() != tt.driver {
				t.Errorf("DriverName() = %v, want %v", dialect.DriverName(), tt.driver)
			}
			if tt.driver == "sqlite3" && cfg.Path != "game.db" {
				t.Errorf("Path = %q, want game.db", cfg.Path)
			}
		})
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT entry_value FROM kv_entries WHERE entry_key = ?",
			expected: "SELECT entry_value FROM kv_entries WHERE entry_key = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT entry_value FROM kv_entries WHERE entry_key = ?",
			expected: "SELECT entry_value FROM kv_entries WHERE entry_key = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO kv_entries (entry_key, entry_value) VALUES (?, ?)",
			expected: "INSERT INTO kv_entries (entry_key, entry_value) VALUES ($1, $2)",
		},
		{
			name:     "PostgreSQL skips quoted question marks",
			dialect:  NewPostgresDialect(),
			query:    "SELECT entry_key FROM kv_entries WHERE entry_value <> '?' AND entry_key = ?",
			expected: "SELECT entry_key FROM kv_entries WHERE entry_value <> '?' AND entry_key = $1",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "DELETE FROM kv_entries WHERE entry_key = ?",
			expected: "DELETE FROM kv_entries WHERE entry_key = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestUpsertQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		expected string
	}{
		{
			name:     "SQLite",
			dialect:  NewSQLiteDialect(),
			expected: "INSERT INTO kv (k, v, at) VALUES (?, ?, ?) ON CONFLICT (k) DO UPDATE SET v = excluded.v, at = excluded.at",
		},
		{
			name:     "PostgreSQL",
			dialect:  NewPostgresDialect(),
			expected: "INSERT INTO kv (k, v, at) VALUES (?, ?, ?) ON CONFLICT (k) DO UPDATE SET v = excluded.v, at = excluded.at",
		},
		{
			name:     "MySQL",
			dialect:  NewMySQLDialect(),
			expected: "INSERT INTO kv (k, v, at) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v), at = VALUES(at)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.UpsertQuery("kv", "k", "v", "at"); got != tt.expected {
				t.Errorf("UpsertQuery() =\n%v\nwant\n%v", got, tt.expected)
			}
		})
	}
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (id INT);\n\nCREATE TABLE b (id INT);\n")
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(stmts), stmts)
	}
	if stmts[1] != "CREATE TABLE b (id INT)" {
		t.Errorf("unexpected statement %q", stmts[1])
	}
}
