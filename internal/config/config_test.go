package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "AUTO_ADVANCE_DELAY", "VOCAB_SCORING"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.AutoAdvanceDelay != 2*time.Second {
		t.Errorf("AutoAdvanceDelay = %v, want 2s", cfg.AutoAdvanceDelay)
	}
	if cfg.VocabScoring != "flat" {
		t.Errorf("VocabScoring = %q, want flat", cfg.VocabScoring)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SPEECH_ENABLED", "false")
	t.Setenv("AUTO_ADVANCE_DELAY", "500ms")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("TOKEN_DURATION", "not-a-duration")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d", cfg.RedisDB)
	}
	if cfg.SpeechEnabled {
		t.Error("SpeechEnabled should be false")
	}
	if cfg.AutoAdvanceDelay != 500*time.Millisecond {
		t.Errorf("AutoAdvanceDelay = %v", cfg.AutoAdvanceDelay)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.TokenDuration != 365*24*time.Hour {
		t.Errorf("TokenDuration should fall back to default, got %v", cfg.TokenDuration)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		debug bool
		want  slog.Level
	}{
		{level: "info", want: slog.LevelInfo},
		{level: "WARN", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "info", debug: true, want: slog.LevelDebug},
		{level: "bogus", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level, Debug: tt.debug}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q, debug=%v) = %v, want %v", tt.level, tt.debug, got, tt.want)
		}
	}
}
