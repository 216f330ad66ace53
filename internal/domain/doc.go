// Package domain models NOAA Storm Events records and the aggregations the
// impact report is built from.
//
// # Data Source
//
// The dataset is the U.S. National Oceanic and Atmospheric Administration
// (NOAA) Storm Events archive, a single bzip2-compressed CSV covering 1950
// through November 2011. Each row is one recorded weather event with its
// free-text event type, begin date, casualty counts, and damage estimates.
//
// # Storm Events Conventions
//
// Event type (EVTYPE column):
//
//	Free-text category, not a closed enum. The archive contains hundreds of
//	spellings ("TORNADO", "TSTM WIND", "THUNDERSTORM WINDS", ...). The report
//	groups on the raw value; display ordering belongs to the presenter.
//
// Begin date (BGN_DATE column):
//
//	"M/D/YYYY H:MM:SS" with a time-of-day that is always a literal midnight,
//	e.g. "4/18/1950 0:00:00". Only the calendar year is meaningful here. A
//	non-conforming date yields an unknown year and the row is dropped by the
//	analysis-window filter rather than treated as an error.
//
// Damage exponent codes (PROPDMGEXP / CROPDMGEXP columns):
//
//	Single-character magnitude suffixes qualifying the PROPDMG / CROPDMG
//	figures: K = thousands, M = millions, B = billions, matched
//	case-insensitively. The archive also contains stray digits, "+", "-",
//	"?", and blanks; those rows keep their magnitude as-is (base units).
//	That likely undercounts damage for a small number of rows, but it is a
//	known ambiguity in the source data, not something this tool corrects.
//
// Casualty counts (FATALITIES / INJURIES columns):
//
//	Non-negative numerics, occasionally written with a decimal point
//	("15.00"). Empty strings are treated as zero (unreported).
//
// # Analysis Window
//
// Event coverage before 2002 is sparse; recording practice improved markedly
// around that year. The report therefore keeps only events from years
// strictly after [StartYear], giving the 2002-2011 window for the archive's
// final decade. The cmd/inspect tool prints the per-year coverage histogram
// that motivates the cutoff.
package domain
