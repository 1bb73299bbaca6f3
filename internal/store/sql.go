package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"wordrobe/internal/database"
	"wordrobe/internal/models"
)

// SQLStore keeps entries in the kv_entries table
type SQLStore struct {
	db     *database.DB
	upsert string
}

// NewSQLStore creates a store on a migrated database
func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{
		db:     db,
		upsert: db.Dialect.UpsertQuery("kv_entries", "entry_key", "entry_value", "updated_at"),
	}
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT entry_value FROM kv_entries WHERE entry_key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("key %s: %w", key, models.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	return s.set(ctx, s.db, key, value)
}

func (s *SQLStore) set(ctx context.Context, q database.DBTX, key, value string) error {
	if _, err := q.ExecContext(ctx, s.upsert, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) SetMany(ctx context.Context, entries map[string]string) error {
	return s.db.WithTx(ctx, func(tx *database.Tx) error {
		for k, v := range entries {
			if err := s.set(ctx, tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLStore) Remove(ctx context.Context, keys ...string) error {
	return s.db.WithTx(ctx, func(tx *database.Tx) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, "DELETE FROM kv_entries WHERE entry_key = ?", k); err != nil {
				return fmt.Errorf("failed to remove %s: %w", k, err)
			}
		}
		return nil
	})
}

// Entries matches with SUBSTR so % and _ in keys stay literal
func (s *SQLStore) Entries(ctx context.Context, prefix string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT entry_key, entry_value FROM kv_entries WHERE SUBSTR(entry_key, 1, ?) = ?",
		utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		result[k] = v
	}
	return result, rows.Err()
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
