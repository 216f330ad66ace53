package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultDataURL, cfg.DataURL)
	assert.Equal(t, "data/StormData.csv.bz2", cfg.DataPath)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Empty(t, cfg.ResultsDB)
	assert.Equal(t, 2001, cfg.StartYear)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 5*time.Minute, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_URL", "https://example.com/storm.csv.bz2")
	t.Setenv("DATA_PATH", "/tmp/storm.csv.bz2")
	t.Setenv("OUTPUT_DIR", "/tmp/report")
	t.Setenv("RESULTS_DB", "/tmp/runs.db")
	t.Setenv("START_YEAR", "1995")
	t.Setenv("TOP_N", "10")
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/storm.csv.bz2", cfg.DataURL)
	assert.Equal(t, "/tmp/storm.csv.bz2", cfg.DataPath)
	assert.Equal(t, "/tmp/report", cfg.OutputDir)
	assert.Equal(t, "/tmp/runs.db", cfg.ResultsDB)
	assert.Equal(t, 1995, cfg.StartYear)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidTopN(t *testing.T) {
	t.Setenv("TOP_N", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOP_N")
}

func TestLoad_NonNumericTopN(t *testing.T) {
	t.Setenv("TOP_N", "five")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOP_N")
}

func TestLoad_StartYearOutsideCoverage(t *testing.T) {
	t.Setenv("START_YEAR", "2050")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "START_YEAR")
}

func TestLoad_InvalidHTTPTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "fast")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_NegativeHTTPTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}
