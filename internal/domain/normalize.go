package domain

import "strings"

// damageMultipliers maps recognized exponent codes (upper-cased) to their
// base-unit multipliers. Any other code passes through unconverted.
var damageMultipliers = map[string]float64{
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

// NormalizeStats counts exponent-code lookups during NormalizeDamage.
type NormalizeStats struct {
	PropertyScaled      int
	PropertyPassthrough int
	CropScaled          int
	CropPassthrough     int
}

// NormalizeDamage rescales property and crop damage using the exponent-code
// multiplier table, handling the two fields independently. It returns a new
// slice; the input is never mutated. Normalizing already-normalized events
// is a no-op since cleared codes pass through.
func NormalizeDamage(events []StormEvent) ([]StormEvent, NormalizeStats) {
	var stats NormalizeStats
	out := make([]StormEvent, len(events))
	for i, e := range events {
		var scaled bool
		e.PropertyDamage, e.PropertyDamageExp, scaled = normalizeField(e.PropertyDamage, e.PropertyDamageExp)
		if scaled {
			stats.PropertyScaled++
		} else {
			stats.PropertyPassthrough++
		}
		e.CropDamage, e.CropDamageExp, scaled = normalizeField(e.CropDamage, e.CropDamageExp)
		if scaled {
			stats.CropScaled++
		} else {
			stats.CropPassthrough++
		}
		out[i] = e
	}
	return out, stats
}

// normalizeField applies the multiplier for a recognized exponent code and
// clears it. Unrecognized codes (blank, digits, stray punctuation) leave both
// magnitude and code unchanged.
func normalizeField(magnitude float64, code string) (float64, string, bool) {
	mult, ok := damageMultipliers[strings.ToUpper(code)]
	if !ok {
		return magnitude, code, false
	}
	return magnitude * mult, "", true
}
