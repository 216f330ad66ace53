package domain

import "time"

// RawRecord holds the string values of the eight schema columns for one CSV
// row, exactly as read from the archive. Coercion happens in ParseEvent.
type RawRecord struct {
	EventType         string // EVTYPE
	BeginDate         string // BGN_DATE, "M/D/YYYY H:MM:SS"
	Fatalities        string // FATALITIES
	Injuries          string // INJURIES
	PropertyDamage    string // PROPDMG
	PropertyDamageExp string // PROPDMGEXP
	CropDamage        string // CROPDMG
	CropDamageExp     string // CROPDMGEXP
}

// StormEvent is one coerced archive row. Records are derived, read-only data;
// every transform downstream produces new values instead of mutating these.
type StormEvent struct {
	EventType string

	// BeginDate is zero when the source date did not conform to the archive
	// format. Such rows never satisfy the analysis-window predicate.
	BeginDate time.Time

	Fatalities int
	Injuries   int

	// Damage magnitudes, with their one-character exponent codes. After
	// NormalizeDamage a recognized code has been folded into the magnitude
	// and cleared; anything else is carried through untouched.
	PropertyDamage    float64
	PropertyDamageExp string
	CropDamage        float64
	CropDamageExp     string
}

// Year returns the event's calendar year, or false when the begin date was
// unparseable.
func (e StormEvent) Year() (int, bool) {
	if e.BeginDate.IsZero() {
		return 0, false
	}
	return e.BeginDate.Year(), true
}

// HealthImpact is the per-event-type casualty aggregate.
type HealthImpact struct {
	EventType     string
	Fatalities    int
	Injuries      int
	TotalAffected int // Fatalities + Injuries
}

// EconomicImpact is the per-event-type damage aggregate, in base USD.
type EconomicImpact struct {
	EventType      string
	PropertyDamage float64
	CropDamage     float64
	TotalDamage    float64 // PropertyDamage + CropDamage
}
