// Package report renders the aggregate tables as a markdown document,
// stacked bar charts, and machine-readable CSV exports.
package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

// Artifact filenames under the output directory.
const (
	markdownFile = "report.md"
	chartsFile   = "charts.html"
	healthFile   = "health.csv"
	economyFile  = "economy.csv"
)

// Writer renders all report artifacts into an output directory.
type Writer struct {
	outputDir string
	logger    *slog.Logger
}

// NewWriter creates a Writer targeting outputDir.
func NewWriter(outputDir string, logger *slog.Logger) *Writer {
	return &Writer{outputDir: outputDir, logger: logger}
}

// Generate writes report.md, charts.html, health.csv, and economy.csv.
// Failures are reported to the caller, never recovered.
func (w *Writer) Generate(res pipeline.Result) error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(w.outputDir, markdownFile)
	if err := os.WriteFile(mdPath, []byte(renderMarkdown(res)), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	chartPath := filepath.Join(w.outputDir, chartsFile)
	f, err := os.Create(chartPath)
	if err != nil {
		return fmt.Errorf("create charts file: %w", err)
	}
	if err := renderCharts(f, res); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close charts file: %w", err)
	}

	if err := w.writeHealthCSV(res); err != nil {
		return err
	}
	if err := w.writeEconomyCSV(res); err != nil {
		return err
	}

	w.logger.Info("report generated",
		"dir", w.outputDir,
		"artifacts", []string{markdownFile, chartsFile, healthFile, economyFile},
	)
	return nil
}

func (w *Writer) writeHealthCSV(res pipeline.Result) error {
	records := [][]string{{"event_type", "fatalities", "injuries", "total_affected"}}
	for _, r := range res.Health {
		records = append(records, []string{
			r.EventType,
			strconv.Itoa(r.Fatalities),
			strconv.Itoa(r.Injuries),
			strconv.Itoa(r.TotalAffected),
		})
	}
	return w.writeCSV(healthFile, records)
}

func (w *Writer) writeEconomyCSV(res pipeline.Result) error {
	records := [][]string{{"event_type", "property_damage_usd", "crop_damage_usd", "total_damage_usd"}}
	for _, r := range res.Economy {
		records = append(records, []string{
			r.EventType,
			strconv.FormatFloat(r.PropertyDamage, 'f', -1, 64),
			strconv.FormatFloat(r.CropDamage, 'f', -1, 64),
			strconv.FormatFloat(r.TotalDamage, 'f', -1, 64),
		})
	}
	return w.writeCSV(economyFile, records)
}

func (w *Writer) writeCSV(name string, records [][]string) error {
	f, err := os.Create(filepath.Join(w.outputDir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}
