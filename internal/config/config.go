package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort string

	// Persistence
	StateBackend   string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string
	RedisAddress   string
	RedisPassword  string
	RedisDB        int

	// Content
	StaticFilesPath string
	ContentPath     string
	ContentCSVURL   string
	SentenceSource  string
	VocabScoring    string

	// Player tokens
	TokenSecret   string
	TokenDuration time.Duration

	AllowedOrigins []string

	// Speech and sound
	SpeechEnabled    bool
	TTSBaseURL       string
	PregenerateAudio bool
	AutoAdvanceDelay time.Duration

	LogLevel string
	Debug    bool
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("PORT", "8080"),
		StateBackend:     getEnv("STATE_BACKEND", "sql"),
		DatabaseType:     getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:     getEnv("DB_PATH", "./wordrobe.db"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		MigrationsPath:   getEnv("MIGRATIONS_PATH", ""),
		RedisAddress:     getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		StaticFilesPath:  getEnv("STATIC_PATH", "./static"),
		ContentPath:      getEnv("CONTENT_PATH", ""),
		ContentCSVURL:    getEnv("CONTENT_CSV_URL", ""),
		SentenceSource:   getEnv("SENTENCE_SOURCE", "curated"),
		VocabScoring:     getEnv("VOCAB_SCORING", "flat"),
		TokenSecret:      getEnv("TOKEN_SECRET", "change-me-in-production"),
		TokenDuration:    getEnvDuration("TOKEN_DURATION", 365*24*time.Hour),
		AllowedOrigins:   getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		SpeechEnabled:    getEnvBool("SPEECH_ENABLED", true),
		TTSBaseURL:       getEnv("TTS_BASE_URL", "https://translate.google.com/translate_tts"),
		PregenerateAudio: getEnvBool("PREGENERATE_AUDIO", false),
		AutoAdvanceDelay: getEnvDuration("AUTO_ADVANCE_DELAY", 2*time.Second),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Debug:            getEnvBool("DEBUG", false),
	}
}

// SlogLevel maps LogLevel to a slog level. DEBUG forces debug output.
func (c *Config) SlogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}

// getEnvList splits a comma separated variable
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
