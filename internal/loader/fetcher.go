package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Fetcher ensures the compressed archive exists at the local cache path,
// downloading it once when absent. A single attempt is made; if the download
// fails and no cached copy exists, the run aborts.
type Fetcher struct {
	url        string
	cachePath  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFetcher creates a Fetcher for the given archive URL and cache path.
func NewFetcher(url, cachePath string, timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		url:       url,
		cachePath: cachePath,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch returns the local path of the archive, downloading it first if no
// cached copy exists. The download writes to a temp file and renames into
// place so an interrupted run never leaves a truncated cache file.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	if _, err := os.Stat(f.cachePath); err == nil {
		f.logger.Info("using cached dataset", "path", f.cachePath)
		return f.cachePath, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.cachePath), 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	f.logger.Info("downloading dataset", "url", f.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download dataset: unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.cachePath), ".download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	written, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.cachePath); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("move into cache: %w", err)
	}

	f.logger.Info("dataset cached", "path", f.cachePath, "bytes", written)
	return f.cachePath, nil
}
