package audio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wordrobe/internal/models"
)

// TTSService provides text-to-speech functionality
type TTSService struct {
	audioDir string
	baseURL  string
	enabled  bool
	client   *http.Client
}

const (
	ttsRequestTimeout = 10 * time.Second
	ttsFilePrefix     = "tts_"
	// NormalRate is regular speaking speed
	NormalRate = 1.0
)

// NewTTSService creates a new TTS service. A disabled service reports
// models.ErrSpeechUnsupported from Speak.
func NewTTSService(audioDir, baseURL string, enabled bool) *TTSService {
	return &TTSService{
		audioDir: audioDir,
		baseURL:  baseURL,
		enabled:  enabled,
		client:   &http.Client{Timeout: ttsRequestTimeout},
	}
}

// Enabled reports whether speech synthesis is available
func (s *TTSService) Enabled() bool {
	return s.enabled
}

// AudioDir is where generated files are written
func (s *TTSService) AudioDir() string {
	return s.audioDir
}

// FileName returns the cache file name for text spoken at rate
func FileName(text string, rate float64) string {
	sum := sha256.Sum256([]byte(normalize(text) + "|" + strconv.FormatFloat(rate, 'f', 2, 64)))
	return ttsFilePrefix + hex.EncodeToString(sum[:])[:20] + ".mp3"
}

// Speak makes sure an audio file for text at rate exists and returns its
// file name (not full path)
func (s *TTSService) Speak(ctx context.Context, text string, rate float64) (string, error) {
	if !s.enabled {
		return "", models.ErrSpeechUnsupported
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text: %w", models.ErrInvalidInput)
	}

	filename := FileName(text, rate)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := s.generateUsingGoogleTTS(ctx, text, rate, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// generateUsingGoogleTTS downloads speech from Google Translate's endpoint
func (s *TTSService) generateUsingGoogleTTS(ctx context.Context, text string, rate float64, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", strconv.Itoa(len(text)))
	if rate < NormalRate {
		params.Set("ttsspeed", strconv.FormatFloat(rate, 'f', 2, 64))
	}

	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent (required by Google)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}

	// Write to a temp file so a concurrent reader never sees a partial mp3
	tmp, err := os.CreateTemp(s.audioDir, ".tts-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return os.Rename(tmp.Name(), outputPath)
}

// CleanupOrphans removes generated speech files whose names are not in keep
func (s *TTSService) CleanupOrphans(keep map[string]bool) (int, error) {
	files, err := os.ReadDir(s.audioDir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read audio directory: %w", err)
	}

	removed := 0
	for _, file := range files {
		name := file.Name()
		if file.IsDir() || !strings.HasPrefix(name, ttsFilePrefix) || filepath.Ext(name) != ".mp3" || keep[name] {
			continue
		}
		if err := os.Remove(filepath.Join(s.audioDir, name)); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("failed to remove %s: %w", name, err)
		}
		removed++
	}
	return removed, nil
}

func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
