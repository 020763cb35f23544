package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir     string // directory for exported decks and other data files
	DBPath      string // path to the deck library database
	DefaultMode string // quiz mode used when -m is not given
	NoColor     bool   // disable colored terminal output
	LogLevel    string // slog level for diagnostics on stderr
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		DataDir:     getenvDefault("FLASHQUIZ_DATA_DIR", "data"),
		DBPath:      getenvDefault("FLASHQUIZ_DB", "flashquiz.db"),
		DefaultMode: getenvDefault("FLASHQUIZ_MODE", "sequential"),
		NoColor:     getenvBool("FLASHQUIZ_NO_COLOR", false),
		LogLevel:    getenvDefault("FLASHQUIZ_LOG_LEVEL", "warn"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvBool(k string, fallback bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
