package content

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"wordrobe/internal/models"
)

// SheetSource fetches sentences from a spreadsheet published as CSV
type SheetSource struct {
	url    string
	client *http.Client
}

// NewSheetSource creates a source for a published CSV url
func NewSheetSource(url string) *SheetSource {
	return &SheetSource{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch downloads and parses the sheet
func (s *SheetSource) Fetch(ctx context.Context) ([]models.Sentence, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet returned status %d", resp.StatusCode)
	}
	return ParseSentences(resp.Body)
}

// LoadInto makes the sheet the store's sentence pool. Any failure, or a
// sheet without usable rows, leaves the built-in pool in use.
func (s *SheetSource) LoadInto(ctx context.Context, store *Store) int {
	sentences, err := s.Fetch(ctx)
	if err != nil {
		slog.Warn("failed to fetch sentence sheet, falling back to local data", "error", err)
		return 0
	}
	n := store.ReplaceSentences(sentences)
	if n == 0 {
		slog.Warn("sentence sheet has no usable rows, falling back to local data")
		return 0
	}
	slog.Info("sentence sheet loaded", "count", n)
	return n
}

// ParseSentences reads a CSV with a header row. The korean and english
// columns are found by name, falling back to the first two columns.
func ParseSentences(r io.Reader) ([]models.Sentence, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	koreanCol, englishCol := 0, 1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "korean":
			koreanCol = i
		case "english":
			englishCol = i
		}
	}

	var sentences []models.Sentence
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if koreanCol >= len(record) || englishCol >= len(record) {
			continue
		}
		sentence := models.Sentence{
			Korean:  strings.TrimSpace(record[koreanCol]),
			English: SplitTokens(record[englishCol]),
		}
		if sentence.Valid() {
			sentences = append(sentences, sentence)
		}
	}

	if len(sentences) == 0 {
		return nil, models.ErrNoContentAvailable
	}
	return sentences, nil
}

// SplitTokens splits an English answer on whitespace
func SplitTokens(s string) []string {
	return strings.Fields(s)
}
