package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatsHundredOunces(t *testing.T) {
	stats := DeriveStats(100)

	assert.InDelta(t, 3110.34768, stats.TotalGrams, 1e-6)
	assert.InDelta(t, 296.506, stats.VolumeCm3, 1e-3)
	assert.InDelta(t, 0.93833, stats.WireMiles, 1e-4)
	assert.Equal(t, 3, stats.Kilograms)
	assert.InDelta(t, 8.7615, stats.SodaCans, 1e-3)
	assert.Equal(t, 95, stats.ReflectivityPct)
	assert.Len(t, stats.Facts, 5)
	assert.Contains(t, stats.Facts[3], "296.5 cubic centimeters")
}

func TestDeriveStatsKilogramsTruncate(t *testing.T) {
	// 32.15 troy oz is just a hair under one kilogram.
	assert.Equal(t, 0, DeriveStats(32.15).Kilograms)
	assert.Equal(t, 1, DeriveStats(32.151).Kilograms)
}

func TestDeriveStatsDegenerateWeights(t *testing.T) {
	for _, weight := range []float64{0, -5, math.NaN()} {
		stats := DeriveStats(weight)

		assert.Zero(t, stats.TotalGrams)
		assert.Zero(t, stats.VolumeCm3)
		assert.Zero(t, stats.WireMiles)
		assert.Zero(t, stats.Kilograms)
		assert.Zero(t, stats.SodaCans)
		assert.Equal(t, 95, stats.ReflectivityPct)
	}
}
