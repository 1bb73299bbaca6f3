package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"wordrobe/internal/config"
	"wordrobe/internal/service"
	"wordrobe/internal/store"
)

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			slog.Error("backup failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Remove all stored keys before import (WARNING: destructive)")

	if len(args) < 1 {
		printUsage()
		return errUsage
	}

	switch args[0] {
	case "export":
		exportCmd.Parse(args[1:])
	case "import":
		importCmd.Parse(args[1:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			return errUsage
		}
	default:
		printUsage()
		return errUsage
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx := context.Background()
	kv, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open state backend: %w", err)
	}
	defer kv.Close()

	backupService := service.NewBackupService(kv, cfg.StateBackend)

	if args[0] == "export" {
		return handleExport(ctx, backupService, *exportOutput)
	}
	return handleImport(ctx, backupService, kv, *importInput, *importClear)
}

func handleExport(ctx context.Context, backupService *service.BackupService, outputPath string) error {
	if outputPath == "" {
		outputPath = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	slog.Info("exporting state", "path", outputPath)
	if err := backupService.ExportToFile(ctx, outputPath); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if info, err := os.Stat(outputPath); err == nil {
		slog.Info("export complete", "path", outputPath, "bytes", info.Size())
	}
	return nil
}

func handleImport(ctx context.Context, backupService *service.BackupService, kv store.KV, inputPath string, clearData bool) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file %s: %w", inputPath, err)
	}

	if clearData {
		fmt.Print("WARNING: This will delete every player and statistic. Type 'yes' to confirm: ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			slog.Info("import cancelled")
			return nil
		}

		removed, err := clearState(ctx, kv)
		if err != nil {
			return fmt.Errorf("failed to clear state: %w", err)
		}
		slog.Info("cleared existing state", "keys", removed)
	}

	slog.Info("importing state", "path", inputPath)
	backup, err := backupService.ImportFromFile(ctx, inputPath)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	slog.Info("import complete", "entries", len(backup.Entries), "players", backup.Players, "exported_at", backup.ExportedAt)
	return nil
}

func clearState(ctx context.Context, kv store.KV) (int, error) {
	entries, err := kv.Entries(ctx, "")
	if err != nil {
		return 0, err
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return 0, nil
	}
	return len(keys), kv.Remove(ctx, keys...)
}

func printUsage() {
	fmt.Println("Wordrobe State Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export every stored key to a JSON file")
	fmt.Println("  backup import [options]    Import stored keys from a JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -clear            Remove all stored keys before import (WARNING: destructive)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  backup export -output mybackup.json")
	fmt.Println("  backup import -input backup.json")
	fmt.Println("  backup import -input backup.json -clear")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  STATE_BACKEND    sql, redis or memory (default: sql)")
	fmt.Println("  DATABASE_TYPE    sqlite, postgres or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./wordrobe.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
	fmt.Println("  REDIS_ADDRESS    Redis address (default: localhost:6379)")
}
