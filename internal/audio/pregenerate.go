package audio

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pregenerate downloads speech for every text at normal rate, at most
// limit at a time. Individual failures are logged and skipped. It returns
// the file names that exist afterwards.
func (s *TTSService) Pregenerate(ctx context.Context, texts []string, limit int) (map[string]bool, error) {
	if limit < 1 {
		limit = 1
	}

	var mu sync.Mutex
	files := make(map[string]bool, len(texts))
	failed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, text := range texts {
		g.Go(func() error {
			name, err := s.Speak(gctx, text, NormalRate)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				slog.Warn("failed to pregenerate audio", "text", text, "error", err)
				return nil
			}
			files[name] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return files, err
	}
	slog.Info("audio pregenerated", "files", len(files), "failed", failed)
	return files, ctx.Err()
}
