package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"wordrobe/internal/audio"
	"wordrobe/internal/config"
	"wordrobe/internal/content"
	"wordrobe/internal/game"
	"wordrobe/internal/handlers"
	"wordrobe/internal/level"
	"wordrobe/internal/repository"
	"wordrobe/internal/security"
	"wordrobe/internal/service"
	"wordrobe/internal/store"
)

const (
	pregenerateWorkers = 4
	requestsPerMinute  = 30
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	var logHandler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Debug {
		logHandler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		logHandler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(logHandler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize state backend: %w", err)
	}
	defer kv.Close()

	// Content
	contentStore := content.NewDefaultStore()
	if cfg.ContentPath != "" {
		n, err := contentStore.LoadDir(cfg.ContentPath)
		if err != nil {
			return fmt.Errorf("failed to load content packs from %s: %w", cfg.ContentPath, err)
		}
		slog.Info("content packs loaded", "packs", n, "path", cfg.ContentPath)
	}
	if cfg.ContentCSVURL != "" {
		content.NewSheetSource(cfg.ContentCSVURL).LoadInto(ctx, contentStore)
	}

	source, err := level.ParseSource(cfg.SentenceSource)
	if err != nil {
		return fmt.Errorf("invalid SENTENCE_SOURCE: %w", err)
	}
	vocabRule, err := game.ParseVocabRule(cfg.VocabScoring)
	if err != nil {
		return fmt.Errorf("invalid VOCAB_SCORING: %w", err)
	}
	generator := level.NewGenerator(contentStore, source, nil)

	// Audio
	audioDir := filepath.Join(cfg.StaticFilesPath, "audio")
	tts := audio.NewTTSService(audioDir, cfg.TTSBaseURL, cfg.SpeechEnabled)
	if cfg.PregenerateAudio && tts.Enabled() {
		go pregenerate(ctx, tts, contentStore)
	}

	sounds := audio.NewSoundManager(filepath.Join(audioDir, "effects"), "/static/audio/effects")
	if err := sounds.Init(); err != nil {
		slog.Warn("sound effects unavailable", "error", err)
	}
	defer sounds.Dispose()

	// Repositories
	profiles := repository.NewProfileRepository(kv)
	stats := repository.NewStatsRepository(kv, nil)

	// Security
	tokens := security.NewTokenIssuer(cfg.TokenSecret, cfg.TokenDuration)
	csrf := security.NewCSRFGenerator(cfg.TokenSecret)
	limiter := security.NewRateLimiter(requestsPerMinute, time.Minute)
	defer limiter.Stop()

	// Services
	locks := service.NewPlayerLocks()
	playService := service.NewPlayService(generator, profiles, stats, game.ScoringPolicy{Vocab: vocabRule}, tts, sounds, locks, service.PlayOptions{
		AutoAdvanceDelay: cfg.AutoAdvanceDelay,
	})
	defer playService.Dispose()
	playerService := service.NewPlayerService(profiles, tokens)
	shopService := service.NewShopService(content.NewCatalog("/static"), profiles, locks)

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, handlers.Handlers{
		Players:    handlers.NewPlayerHandler(playerService, service.NewStatsService(stats), sounds, csrf),
		Play:       handlers.NewPlayHandler(playService),
		Shop:       handlers.NewShopHandler(shopService),
		Middleware: handlers.NewMiddleware(playerService, csrf, limiter),
		State:      kv,
		StaticPath: cfg.StaticFilesPath,
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handlers.CORS(cfg.AllowedOrigins, handlers.Logging(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", server.Addr, "state_backend", cfg.StateBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}
	slog.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// pregenerate warms the speech cache for every known sentence and word,
// then removes cached files nothing refers to any more.
func pregenerate(ctx context.Context, tts *audio.TTSService, contentStore *content.Store) {
	var texts []string
	for _, s := range contentStore.Sentences() {
		texts = append(texts, s.Target())
	}
	for _, w := range contentStore.Words() {
		texts = append(texts, w.English)
	}

	keep, err := tts.Pregenerate(ctx, texts, pregenerateWorkers)
	if err != nil {
		slog.Warn("audio pregeneration stopped", "error", err)
		return
	}
	removed, err := tts.CleanupOrphans(keep)
	if err != nil {
		slog.Warn("audio cleanup failed", "error", err)
		return
	}
	slog.Info("audio cache ready", "files", len(keep), "removed", removed)
}
