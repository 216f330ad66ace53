// Package pipeline orchestrates the fetch-parse-filter-normalize-aggregate
// run that produces the report's aggregate tables.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
)

// Source ensures the archive exists locally and returns its path.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// EventReader parses a local archive file into StormEvents.
type EventReader interface {
	ReadEvents(path string) ([]domain.StormEvent, error)
}

// Pipeline runs the batch analysis from archive to ranked aggregates. It is
// single-pass and all-or-nothing: any stage failure aborts the run.
type Pipeline struct {
	source    Source
	reader    EventReader
	logger    *slog.Logger
	metrics   *observability.Metrics
	startYear int
	topN      int
}

// Result holds everything the presenter and run store need from one run.
type Result struct {
	Health  []domain.HealthImpact
	Economy []domain.EconomicImpact

	RowsRead    int
	RowsKept    int
	StartYear   int
	GeneratedAt time.Time
}

// New creates a Pipeline with the given stages and observability.
func New(source Source, reader EventReader, logger *slog.Logger, metrics *observability.Metrics, startYear, topN int) *Pipeline {
	return &Pipeline{
		source:    source,
		reader:    reader,
		logger:    logger,
		metrics:   metrics,
		startYear: startYear,
		topN:      topN,
	}
}

// Run executes one complete analysis pass.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	p.logger.Info("pipeline started", "start_year", p.startYear, "top_n", p.topN)

	var path string
	err := p.timed("fetch", func() error {
		var err error
		path, err = p.source.Fetch(ctx)
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("fetch dataset: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var events []domain.StormEvent
	err = p.timed("parse", func() error {
		var err error
		events, err = p.reader.ReadEvents(path)
		return err
	})
	if err != nil {
		return Result{}, fmt.Errorf("read dataset: %w", err)
	}
	p.metrics.RowsRead.Add(float64(len(events)))

	var filtered []domain.StormEvent
	var fstats domain.FilterStats
	_ = p.timed("filter", func() error {
		filtered, fstats = domain.FilterByYear(events, p.startYear)
		return nil
	})
	p.metrics.RowsDropped.WithLabelValues("bad_date").Add(float64(fstats.BadDate))
	p.metrics.RowsDropped.WithLabelValues("outside_window").Add(float64(fstats.OutsideWindow))
	p.logger.Info("filtered to analysis window",
		"kept", len(filtered),
		"dropped_bad_date", fstats.BadDate,
		"dropped_outside_window", fstats.OutsideWindow,
	)

	var normalized []domain.StormEvent
	var nstats domain.NormalizeStats
	_ = p.timed("normalize", func() error {
		normalized, nstats = domain.NormalizeDamage(filtered)
		return nil
	})
	p.metrics.ExponentLookups.WithLabelValues("property", "scaled").Add(float64(nstats.PropertyScaled))
	p.metrics.ExponentLookups.WithLabelValues("property", "passthrough").Add(float64(nstats.PropertyPassthrough))
	p.metrics.ExponentLookups.WithLabelValues("crop", "scaled").Add(float64(nstats.CropScaled))
	p.metrics.ExponentLookups.WithLabelValues("crop", "passthrough").Add(float64(nstats.CropPassthrough))

	res := Result{
		RowsRead:    len(events),
		RowsKept:    len(filtered),
		StartYear:   p.startYear,
		GeneratedAt: domain.Now(),
	}
	_ = p.timed("aggregate", func() error {
		res.Health = domain.AggregateHealth(normalized, p.topN)
		res.Economy = domain.AggregateEconomy(normalized, p.topN)
		return nil
	})

	p.logger.Info("pipeline complete",
		"rows_read", res.RowsRead,
		"rows_kept", res.RowsKept,
		"health_groups", len(res.Health),
		"economy_groups", len(res.Economy),
	)
	return res, nil
}

// timed runs fn and records its duration under the stage label.
func (p *Pipeline) timed(stage string, fn func() error) error {
	start := time.Now()
	err := fn()
	p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	return err
}
