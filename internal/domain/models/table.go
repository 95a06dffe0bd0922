package models

import "slices"

// Canonical columns of the save format. Every inventory source (CSV upload,
// manual entry, interactive edits) is normalized into these five columns.
const (
	ColDescription  = "Description"
	ColWeight       = "Weight (troy oz)"
	ColDateAcquired = "Date Acquired"
	ColPricePaid    = "Price Paid ($)"
	ColModifier     = "Modifier ($)"

	// ColLegacyWeight appears in stacks exported by early versions and is
	// renamed to ColWeight during normalization.
	ColLegacyWeight = "Weight (ozt)"

	// ColMeltValue is appended to display tables only. It never survives
	// re-normalization.
	ColMeltValue = "Item Melt Value ($)"
)

// TotalsMarker is the reserved description of the synthetic footer row
// appended to display tables. Rows carrying it are stripped whenever a table
// re-enters the data path, so the footer can never be double counted.
const TotalsMarker = "TOTAL"

// CanonicalColumns returns the five save-format columns in display order.
func CanonicalColumns() []string {
	return []string{ColDescription, ColWeight, ColDateAcquired, ColPricePaid, ColModifier}
}

// RawTable is tabular data of unknown provenance: a decoded CSV, an edit
// payload, or a previously normalized inventory. Cells may hold strings,
// numbers, Dates, times, or nil; typing happens in normalization.
type RawTable struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// HasColumn reports whether name is declared in Columns.
func (t RawTable) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// MissingColumns lists the canonical columns absent from the table, in
// canonical order.
func (t RawTable) MissingColumns() []string {
	var missing []string
	for _, col := range CanonicalColumns() {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}
