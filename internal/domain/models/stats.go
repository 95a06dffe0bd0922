package models

// StackStats holds the illustrative physical statistics derived from the
// stack's total weight. All values are zero for a weightless stack.
type StackStats struct {
	TotalGrams      float64  `json:"total_grams"`
	VolumeCm3       float64  `json:"volume_cm3"`
	WireMiles       float64  `json:"wire_miles"`
	Kilograms       int      `json:"kilograms"`
	SodaCans        float64  `json:"soda_cans"`
	ReflectivityPct int      `json:"reflectivity_pct"`
	Facts           []string `json:"facts"`
}
