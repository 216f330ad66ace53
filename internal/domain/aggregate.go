package domain

import "sort"

// AggregateHealth groups events by type, sums fatalities and injuries, and
// returns the topN groups ranked by total affected, descending. Only event
// types with at least one fatality or injury are included. Ties keep the
// first-seen order of the input. topN <= 0 returns all groups.
func AggregateHealth(events []StormEvent, topN int) []HealthImpact {
	byType := make(map[string]*HealthImpact)
	var order []string

	for _, e := range events {
		if e.Fatalities == 0 && e.Injuries == 0 {
			continue
		}
		agg, ok := byType[e.EventType]
		if !ok {
			agg = &HealthImpact{EventType: e.EventType}
			byType[e.EventType] = agg
			order = append(order, e.EventType)
		}
		agg.Fatalities += e.Fatalities
		agg.Injuries += e.Injuries
	}

	out := make([]HealthImpact, 0, len(order))
	for _, typ := range order {
		agg := byType[typ]
		agg.TotalAffected = agg.Fatalities + agg.Injuries
		out = append(out, *agg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalAffected > out[j].TotalAffected
	})
	return truncate(out, topN)
}

// AggregateEconomy groups events by type, sums property and crop damage, and
// returns the topN groups ranked by total damage, descending. Only event
// types with positive property or crop damage are included. Ties keep the
// first-seen order of the input. topN <= 0 returns all groups.
func AggregateEconomy(events []StormEvent, topN int) []EconomicImpact {
	byType := make(map[string]*EconomicImpact)
	var order []string

	for _, e := range events {
		if e.PropertyDamage == 0 && e.CropDamage == 0 {
			continue
		}
		agg, ok := byType[e.EventType]
		if !ok {
			agg = &EconomicImpact{EventType: e.EventType}
			byType[e.EventType] = agg
			order = append(order, e.EventType)
		}
		agg.PropertyDamage += e.PropertyDamage
		agg.CropDamage += e.CropDamage
	}

	out := make([]EconomicImpact, 0, len(order))
	for _, typ := range order {
		agg := byType[typ]
		agg.TotalDamage = agg.PropertyDamage + agg.CropDamage
		out = append(out, *agg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalDamage > out[j].TotalDamage
	})
	return truncate(out, topN)
}

func truncate[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
