package store

import (
	"context"
	"fmt"
	"log/slog"

	"wordrobe/internal/config"
	"wordrobe/internal/database"
)

// RedisKeyPrefix namespaces every key written to a shared Redis instance
const RedisKeyPrefix = "wordrobe:"

// Open returns the KV backend selected by STATE_BACKEND.
// The sql backend is migrated before it is returned.
func Open(ctx context.Context, cfg *config.Config) (KV, error) {
	switch cfg.StateBackend {
	case "sql", "":
		db, err := database.InitializeWithConfig(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		slog.Info("state backend ready", "backend", "sql", "database", cfg.DatabaseType)
		return NewSQLStore(db), nil
	case "redis":
		kv, err := NewRedisStore(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB, RedisKeyPrefix)
		if err != nil {
			return nil, err
		}
		slog.Info("state backend ready", "backend", "redis", "address", cfg.RedisAddress)
		return kv, nil
	case "memory":
		slog.Warn("state backend is in-memory; progress is lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported state backend: %s", cfg.StateBackend)
	}
}
