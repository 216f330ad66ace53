// Command report generates the storm impact report: it fetches the NOAA
// Storm Events archive (cached locally after the first run), aggregates
// casualties and damage by event type over the analysis window, and writes
// markdown tables, stacked bar charts, and CSV exports to the output
// directory. With RESULTS_DB set, each run is also recorded in SQLite.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/storm-impact-report/internal/config"
	"github.com/couchcryptid/storm-impact-report/internal/loader"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
	"github.com/couchcryptid/storm-impact-report/internal/report"
	"github.com/couchcryptid/storm-impact-report/internal/store"
)

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := loader.NewFetcher(cfg.DataURL, cfg.DataPath, cfg.HTTPTimeout, logger)
	reader := loader.NewReader(logger)
	p := pipeline.New(fetcher, reader, logger, metrics, cfg.StartYear, cfg.TopN)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := p.Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	writer := report.NewWriter(cfg.OutputDir, logger)
	if err := writer.Generate(result); err != nil {
		logger.Error("report generation failed", "error", err)
		os.Exit(1)
	}

	if cfg.ResultsDB != "" {
		st, err := store.Open(cfg.ResultsDB)
		if err != nil {
			logger.Error("results db open failed", "error", err)
			os.Exit(1)
		}
		defer st.Close()

		runID, err := st.SaveRun(ctx, result)
		if err != nil {
			logger.Error("results db save failed", "error", err)
			os.Exit(1)
		}
		logger.Info("run recorded", "db", cfg.ResultsDB, "run_id", runID)
	}

	logger.Info("report complete", "output_dir", cfg.OutputDir)
}
