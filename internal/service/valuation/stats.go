package valuation

import (
	"fmt"
	"math"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
)

// Physical constants behind the derived statistics.
const (
	// TroyOzToGrams converts troy ounces to grams.
	TroyOzToGrams = 31.1034768

	// SilverDensityGPerCm3 is the density of pure silver at room
	// temperature.
	SilverDensityGPerCm3 = 10.49

	wireDiameterMm  = 0.5
	sodaCanGrams    = 355.0
	reflectivityPct = 95
)

// DeriveStats computes the illustrative statistics from total stack weight.
// Pure and total: zero, negative, and NaN weights all yield all-zero stats.
func DeriveStats(totalWeightOz float64) models.StackStats {
	if math.IsNaN(totalWeightOz) || totalWeightOz < 0 {
		totalWeightOz = 0
	}

	grams := totalWeightOz * TroyOzToGrams
	volumeCm3 := grams / SilverDensityGPerCm3

	radiusCm := (wireDiameterMm / 10.0) / 2.0
	crossSectionCm2 := math.Pi * radiusCm * radiusCm
	var lengthCm float64
	if crossSectionCm2 > 0 {
		// Guarded so a degenerate cross-section yields 0, never +Inf.
		lengthCm = volumeCm3 / crossSectionCm2
	}
	wireMiles := lengthCm / 100.0 / 1609.344

	stats := models.StackStats{
		TotalGrams:      grams,
		VolumeCm3:       volumeCm3,
		WireMiles:       wireMiles,
		Kilograms:       int(grams / 1000.0),
		SodaCans:        grams / sodaCanGrams,
		ReflectivityPct: reflectivityPct,
	}
	stats.Facts = factLines(stats)
	return stats
}

func factLines(s models.StackStats) []string {
	return []string{
		fmt.Sprintf("The Wire Fact: drawn into a %.1f mm wire, your silver would stretch about %s miles.",
			wireDiameterMm, models.Grouped(s.WireMiles, 1)),
		fmt.Sprintf("Industrial Use: that is about %s kg of the most conductive metal there is.",
			models.Grouped(float64(s.Kilograms), 0)),
		fmt.Sprintf("Soda Can Equivalent: your stack weighs the same as about %s full cans.",
			models.Grouped(s.SodaCans, 1)),
		fmt.Sprintf("Volume: your stack occupies about %s cubic centimeters.",
			models.Grouped(s.VolumeCm3, 1)),
		fmt.Sprintf("Reflectivity: polished silver reflects about %d%% of visible light.",
			s.ReflectivityPct),
	}
}
