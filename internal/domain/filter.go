package domain

// StartYear is the analysis-window boundary: only events from years strictly
// later are analyzed. Event coverage before 2002 is sparse, so the report
// covers 2002 through the archive's final year.
const StartYear = 2001

// FilterStats counts rows excluded by FilterByYear, by reason.
type FilterStats struct {
	BadDate       int // begin date did not parse
	OutsideWindow int // parsed year not after the start year
}

// FilterByYear returns the events whose begin year is strictly greater than
// startYear, preserving input order. Rows with unparseable dates are dropped,
// not treated as errors.
func FilterByYear(events []StormEvent, startYear int) ([]StormEvent, FilterStats) {
	var stats FilterStats
	kept := make([]StormEvent, 0, len(events))
	for _, e := range events {
		year, ok := e.Year()
		if !ok {
			stats.BadDate++
			continue
		}
		if year <= startYear {
			stats.OutsideWindow++
			continue
		}
		kept = append(kept, e)
	}
	return kept, stats
}
