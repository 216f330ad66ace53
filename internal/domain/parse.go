package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// beginDateLayout matches the archive's BGN_DATE column, e.g.
// "4/18/1950 0:00:00". The time-of-day is always a literal midnight.
const beginDateLayout = "1/2/2006 15:04:05"

// ParseEvent coerces a raw CSV row into a StormEvent. Malformed numeric
// columns abort with an error; a malformed begin date does not, it yields a
// zero BeginDate so the analysis-window filter drops the row.
func ParseEvent(rec RawRecord) (StormEvent, error) {
	fatalities, err := parseCount(rec.Fatalities)
	if err != nil {
		return StormEvent{}, fmt.Errorf("fatalities: %w", err)
	}
	injuries, err := parseCount(rec.Injuries)
	if err != nil {
		return StormEvent{}, fmt.Errorf("injuries: %w", err)
	}
	propDmg, err := parseMagnitude(rec.PropertyDamage)
	if err != nil {
		return StormEvent{}, fmt.Errorf("property damage: %w", err)
	}
	cropDmg, err := parseMagnitude(rec.CropDamage)
	if err != nil {
		return StormEvent{}, fmt.Errorf("crop damage: %w", err)
	}

	return StormEvent{
		EventType:         strings.TrimSpace(rec.EventType),
		BeginDate:         parseBeginDate(rec.BeginDate),
		Fatalities:        fatalities,
		Injuries:          injuries,
		PropertyDamage:    propDmg,
		PropertyDamageExp: strings.TrimSpace(rec.PropertyDamageExp),
		CropDamage:        cropDmg,
		CropDamageExp:     strings.TrimSpace(rec.CropDamageExp),
	}, nil
}

// parseCount parses a casualty column. The archive writes counts as plain
// integers or with a decimal point ("15.00"); empty means unreported.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse count %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative count %q", s)
	}
	return int(v), nil
}

// parseMagnitude parses a damage column. Empty means zero.
func parseMagnitude(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse magnitude %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative magnitude %q", s)
	}
	return v, nil
}

// parseBeginDate parses BGN_DATE, returning the zero time on any mismatch.
func parseBeginDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(beginDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
