package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"wordrobe/internal/store"
)

const backupVersion = "1.0"

// BackupData is a snapshot of every persisted key
type BackupData struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Backend    string            `json:"backend"`
	Players    int               `json:"players"`
	Entries    map[string]string `json:"entries"`
}

// BackupService exports and restores the key-value state
type BackupService struct {
	kv      store.KV
	backend string
}

// NewBackupService creates a new backup service
func NewBackupService(kv store.KV, backend string) *BackupService {
	return &BackupService{kv: kv, backend: backend}
}

// Snapshot reads every entry of the store
func (s *BackupService) Snapshot(ctx context.Context) (*BackupData, error) {
	entries, err := s.kv.Entries(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return &BackupData{
		Version:    backupVersion,
		ExportedAt: time.Now(),
		Backend:    s.backend,
		Players:    countPlayers(entries),
		Entries:    entries,
	}, nil
}

// Export writes a backup as indented JSON
func (s *BackupService) Export(ctx context.Context, w io.Writer) (*BackupData, error) {
	backup, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}

	slog.Info("state exported", "entries", len(backup.Entries), "players", backup.Players)
	return backup, nil
}

// ExportToFile writes a backup to outputPath
func (s *BackupService) ExportToFile(ctx context.Context, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if _, err := s.Export(ctx, file); err != nil {
		return err
	}
	return file.Close()
}

// Import restores every entry of a backup in one batch. Keys absent from
// the backup are left alone.
func (s *BackupService) Import(ctx context.Context, r io.Reader) (*BackupData, error) {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return nil, fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != backupVersion {
		return nil, fmt.Errorf("unsupported backup version %q", backup.Version)
	}

	slog.Info("importing state", "exported_at", backup.ExportedAt, "backend", backup.Backend, "entries", len(backup.Entries))

	if len(backup.Entries) > 0 {
		if err := s.kv.SetMany(ctx, backup.Entries); err != nil {
			return nil, fmt.Errorf("failed to write entries: %w", err)
		}
	}
	return &backup, nil
}

// ImportFromFile restores a backup from inputPath
func (s *BackupService) ImportFromFile(ctx context.Context, inputPath string) (*BackupData, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()
	return s.Import(ctx, file)
}

func countPlayers(entries map[string]string) int {
	players := make(map[string]bool)
	for key := range entries {
		rest, ok := strings.CutPrefix(key, "player:")
		if !ok {
			continue
		}
		if id, _, found := strings.Cut(rest, ":"); found {
			players[id] = true
		}
	}
	return len(players)
}
