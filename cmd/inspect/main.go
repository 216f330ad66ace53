// Command inspect prints the per-year event coverage of a local archive
// file, with a marker at the analysis-window boundary. This is the histogram
// that motivates the default START_YEAR: coverage before 2002 is visibly
// sparse.
//
// Usage:
//
//	go run ./cmd/inspect -data data/StormData.csv.bz2
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/loader"
)

const barWidth = 60

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataPath := flag.String("data", "data/StormData.csv.bz2", "path to the archive file")
	startYear := flag.Int("start-year", domain.StartYear, "analysis-window boundary (exclusive)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	events, err := loader.NewReader(logger).ReadEvents(*dataPath)
	if err != nil {
		return err
	}

	byYear := map[int]int{}
	badDates := 0
	for _, e := range events {
		year, ok := e.Year()
		if !ok {
			badDates++
			continue
		}
		byYear[year]++
	}

	years := make([]int, 0, len(byYear))
	maxCount := 0
	for year, n := range byYear {
		years = append(years, year)
		if n > maxCount {
			maxCount = n
		}
	}
	sort.Ints(years)

	fmt.Printf("=== Event coverage by year (%d rows) ===\n\n", len(events))
	for _, year := range years {
		n := byYear[year]
		bar := strings.Repeat("#", barWidth*n/maxCount)
		marker := "  "
		if year == *startYear+1 {
			marker = "->" // first year inside the analysis window
		}
		fmt.Printf("%s %d  %7d  %s\n", marker, year, n, bar)
	}
	if badDates > 0 {
		fmt.Printf("\n%d rows with unparseable dates (excluded)\n", badDates)
	}
	return nil
}
