package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func casualtyEvent(typ string, fatalities, injuries int) StormEvent {
	return StormEvent{EventType: typ, Fatalities: fatalities, Injuries: injuries}
}

func damageEvent(typ string, property, crop float64) StormEvent {
	return StormEvent{EventType: typ, PropertyDamage: property, CropDamage: crop}
}

func TestAggregateHealth(t *testing.T) {
	t.Run("groups, sums, and ranks by total affected", func(t *testing.T) {
		events := []StormEvent{
			casualtyEvent("TORNADO", 5, 10),
			casualtyEvent("FLOOD", 0, 50),
			casualtyEvent("TORNADO", 1, 0),
		}

		result := AggregateHealth(events, 5)

		require.Len(t, result, 2)
		assert.Equal(t, HealthImpact{EventType: "FLOOD", Fatalities: 0, Injuries: 50, TotalAffected: 50}, result[0])
		assert.Equal(t, HealthImpact{EventType: "TORNADO", Fatalities: 6, Injuries: 10, TotalAffected: 16}, result[1])
	})

	t.Run("excludes types with zero casualties", func(t *testing.T) {
		events := []StormEvent{
			casualtyEvent("FOG", 0, 0),
			casualtyEvent("HAIL", 0, 1),
		}

		result := AggregateHealth(events, 5)

		require.Len(t, result, 1)
		assert.Equal(t, "HAIL", result[0].EventType)
	})

	t.Run("ties preserve first-seen order", func(t *testing.T) {
		events := []StormEvent{
			casualtyEvent("B", 0, 10),
			casualtyEvent("A", 0, 10),
			casualtyEvent("C", 0, 20),
		}

		result := AggregateHealth(events, 5)

		require.Len(t, result, 3)
		assert.Equal(t, "C", result[0].EventType)
		assert.Equal(t, "B", result[1].EventType)
		assert.Equal(t, "A", result[2].EventType)
	})

	t.Run("top-5 truncation", func(t *testing.T) {
		var events []StormEvent
		for i := 1; i <= 8; i++ {
			events = append(events, casualtyEvent(fmt.Sprintf("TYPE-%d", i), 0, i*10))
		}

		result := AggregateHealth(events, 5)

		require.Len(t, result, 5)
		for i, agg := range result {
			assert.Equal(t, (8-i)*10, agg.TotalAffected)
		}
	})

	t.Run("topN zero returns all groups", func(t *testing.T) {
		var events []StormEvent
		for i := 1; i <= 8; i++ {
			events = append(events, casualtyEvent(fmt.Sprintf("TYPE-%d", i), 1, 0))
		}

		assert.Len(t, AggregateHealth(events, 0), 8)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		assert.Empty(t, AggregateHealth(nil, 5))
	})
}

func TestAggregateEconomy(t *testing.T) {
	t.Run("groups, sums, and ranks by total damage", func(t *testing.T) {
		events := []StormEvent{
			damageEvent("FLOOD", 100e9, 5e9),
			damageEvent("DROUGHT", 1e9, 12e9),
			damageEvent("FLOOD", 20e9, 0),
		}

		result := AggregateEconomy(events, 5)

		require.Len(t, result, 2)
		assert.Equal(t, EconomicImpact{EventType: "FLOOD", PropertyDamage: 120e9, CropDamage: 5e9, TotalDamage: 125e9}, result[0])
		assert.Equal(t, EconomicImpact{EventType: "DROUGHT", PropertyDamage: 1e9, CropDamage: 12e9, TotalDamage: 13e9}, result[1])
	})

	t.Run("excludes types with zero damage", func(t *testing.T) {
		events := []StormEvent{
			damageEvent("FOG", 0, 0),
			damageEvent("HAIL", 0, 500),
		}

		result := AggregateEconomy(events, 5)

		require.Len(t, result, 1)
		assert.Equal(t, "HAIL", result[0].EventType)
	})

	t.Run("sums are order independent", func(t *testing.T) {
		forward := []StormEvent{
			damageEvent("FLOOD", 10, 1),
			damageEvent("FLOOD", 20, 2),
			damageEvent("HAIL", 5, 0),
		}
		reversed := []StormEvent{forward[2], forward[1], forward[0]}

		a := AggregateEconomy(forward, 5)
		b := AggregateEconomy(reversed, 5)

		require.Len(t, a, 2)
		require.Len(t, b, 2)
		assert.Equal(t, a[0].TotalDamage, b[0].TotalDamage)
		assert.Equal(t, a[1].TotalDamage, b[1].TotalDamage)
	})

	t.Run("ties preserve first-seen order", func(t *testing.T) {
		events := []StormEvent{
			damageEvent("B", 100, 0),
			damageEvent("A", 0, 100),
		}

		result := AggregateEconomy(events, 5)

		require.Len(t, result, 2)
		assert.Equal(t, "B", result[0].EventType)
		assert.Equal(t, "A", result[1].EventType)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		assert.Empty(t, AggregateEconomy(nil, 5))
	})
}
