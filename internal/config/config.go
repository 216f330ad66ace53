// Package config loads report settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default archive location: the NOAA Storm Events snapshot covering 1950
// through November 2011.
const (
	defaultDataURL  = "https://d396qusza40orc.cloudfront.net/repdata%2Fdata%2FStormData.csv.bz2"
	defaultDataPath = "data/StormData.csv.bz2"
)

// Config holds all report settings, populated from environment variables.
type Config struct {
	DataURL   string
	DataPath  string
	OutputDir string

	// ResultsDB is the SQLite run-history path; empty disables the store.
	ResultsDB string

	// StartYear is exclusive: only events from later years are analyzed.
	StartYear int
	TopN      int

	HTTPTimeout time.Duration
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	startYear, err := parseIntEnv("START_YEAR", 2001)
	if err != nil {
		return nil, err
	}
	topN, err := parseIntEnv("TOP_N", 5)
	if err != nil {
		return nil, err
	}
	httpTimeout, err := parseDurationEnv("HTTP_TIMEOUT", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataURL:     envOrDefault("DATA_URL", defaultDataURL),
		DataPath:    envOrDefault("DATA_PATH", defaultDataPath),
		OutputDir:   envOrDefault("OUTPUT_DIR", "out"),
		ResultsDB:   os.Getenv("RESULTS_DB"),
		StartYear:   startYear,
		TopN:        topN,
		HTTPTimeout: httpTimeout,
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.DataURL == "" {
		return nil, fmt.Errorf("DATA_URL is required")
	}
	if cfg.DataPath == "" {
		return nil, fmt.Errorf("DATA_PATH is required")
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("OUTPUT_DIR is required")
	}
	if cfg.TopN < 1 {
		return nil, fmt.Errorf("TOP_N must be positive, got %d", cfg.TopN)
	}
	if cfg.StartYear < 1950 || cfg.StartYear > 2011 {
		return nil, fmt.Errorf("START_YEAR must be within the archive's 1950-2011 coverage, got %d", cfg.StartYear)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
