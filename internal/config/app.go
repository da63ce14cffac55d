package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads variables from .env files into the environment without
// overriding ones already set. Missing files are not an error.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return ":8080"
	}
	return port
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func LogFile() string {
	return os.Getenv("LOG_FILE")
}

func SessionTTL() (time.Duration, error) {
	return lookupDuration("SESSION_TTL", 30*time.Minute)
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s: %w", key, err)
	}
	return d, nil
}

func lookupInt(key string) (int, bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return n, true, nil
}

// CorsOrigins lists the origins from the comma-separated
// CORS_ALLOWED_ORIGINS. Empty means any origin.
func CorsOrigins() []string {
	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func JanitorInterval() (time.Duration, error) {
	d, err := lookupDuration("SESSION_JANITOR_INTERVAL", time.Minute)
	if err == nil && d <= 0 {
		err = fmt.Errorf("SESSION_JANITOR_INTERVAL must be positive, got %s", d)
	}
	return d, err
}
