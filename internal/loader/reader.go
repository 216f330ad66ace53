// Package loader fetches the NOAA Storm Events archive and parses it into
// domain records.
package loader

import (
	"compress/bzip2"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

// requiredColumns is the fixed subset of the archive schema the report needs.
var requiredColumns = []string{
	"EVTYPE",
	"BGN_DATE",
	"FATALITIES",
	"INJURIES",
	"PROPDMG",
	"PROPDMGEXP",
	"CROPDMG",
	"CROPDMGEXP",
}

// Reader parses a local archive file into StormEvents.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a Reader.
func NewReader(logger *slog.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadEvents opens the archive at path, decompresses it based on extension
// (.bz2, .gz, or plain CSV), and parses every row. A row that cannot be
// coerced aborts the read; there is no row skipping.
func (r *Reader) ReadEvents(path string) ([]domain.StormEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	switch {
	case strings.HasSuffix(path, ".bz2"):
		src = bzip2.NewReader(f)
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	cr := csv.NewReader(src)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty dataset")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var events []domain.StormEvent
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		event, err := domain.ParseEvent(domain.RawRecord{
			EventType:         row[idx["EVTYPE"]],
			BeginDate:         row[idx["BGN_DATE"]],
			Fatalities:        row[idx["FATALITIES"]],
			Injuries:          row[idx["INJURIES"]],
			PropertyDamage:    row[idx["PROPDMG"]],
			PropertyDamageExp: row[idx["PROPDMGEXP"]],
			CropDamage:        row[idx["CROPDMG"]],
			CropDamageExp:     row[idx["CROPDMGEXP"]],
		})
		if err != nil {
			return nil, fmt.Errorf("parse row %d: %w", line, err)
		}
		events = append(events, event)
	}

	r.logger.Info("dataset parsed", "path", path, "rows", len(events))
	return events, nil
}

// indexColumns maps each required column name to its header position.
func indexColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(name)] = i
	}

	idx := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		pos, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("dataset missing column %s", name)
		}
		idx[name] = pos
	}
	return idx, nil
}
