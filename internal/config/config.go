package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL            string
	Timeout           time.Duration
	Language          string
	TokenFile         string
	TranslationFolder string
	BatchConcurrency  int
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		APIURL:            getEnv("DESK_API_URL", "http://localhost:3000/api"),
		Timeout:           parseDuration(os.Getenv("DESK_TIMEOUT"), 10*time.Second),
		Language:          getEnv("DESK_LANG", "en"),
		TokenFile:         getEnv("DESK_TOKEN_FILE", defaultTokenFile()),
		TranslationFolder: os.Getenv("DESK_TRANSLATIONS"),
		BatchConcurrency:  parsePositiveInt(os.Getenv("DESK_BATCH_CONCURRENCY"), 4),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parsePositiveInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".taskdesk", "token")
	}
	return filepath.Join(dir, "taskdesk", "token")
}
