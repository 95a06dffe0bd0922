// Package valuation computes melt values: what a stack is worth at a given
// spot price, plus the derived display table and physical statistics.
package valuation

import (
	"math"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
)

// Evaluate prices the inventory at the given spot price. Pure: the same
// inputs give the same result, and every aggregate is independent of row
// order. NaN fields count as zero.
//
// A stack with no positive weight has no analytics: the result is all zero
// with no per-item values.
func Evaluate(inv models.Inventory, spotPrice float64) models.ValuationResult {
	var totalWeight float64
	for _, it := range inv {
		totalWeight += orZero(it.WeightOz)
	}
	if totalWeight <= 0 {
		return models.ValuationResult{}
	}

	perItem := make([]float64, len(inv))
	var totalMelt, totalPaid float64
	for i, it := range inv {
		melt := orZero(it.WeightOz)*spotPrice + orZero(it.Modifier)
		perItem[i] = melt
		totalMelt += melt
		totalPaid += orZero(it.PricePaid)
	}

	return models.ValuationResult{
		PerItemMelt:    perItem,
		TotalWeightOz:  totalWeight,
		TotalMeltValue: totalMelt,
		TotalPaid:      totalPaid,
		ProfitLoss:     totalMelt - totalPaid,
	}
}

// DisplayTable renders the detail view: canonical columns plus the per-item
// melt value and a summary footer. Display only; normalization strips the
// footer if the table ever re-enters the data path.
func DisplayTable(inv models.Inventory, res models.ValuationResult) models.RawTable {
	if len(inv) == 0 {
		return models.RawTable{Columns: models.CanonicalColumns(), Rows: []map[string]any{}}
	}

	columns := models.CanonicalColumns()
	if res.HasAnalytics() {
		columns = append(columns, models.ColMeltValue)
	}

	table := models.RawTable{
		Columns: columns,
		Rows:    make([]map[string]any, 0, len(inv)+1),
	}
	for i, it := range inv {
		row := it.Row()
		if res.HasAnalytics() {
			row[models.ColMeltValue] = res.PerItemMelt[i]
		}
		table.Rows = append(table.Rows, row)
	}

	footer := map[string]any{
		models.ColDescription:  models.TotalsMarker,
		models.ColWeight:       res.TotalWeightOz,
		models.ColDateAcquired: nil,
		models.ColPricePaid:    res.TotalPaid,
		models.ColModifier:     nil,
	}
	if res.HasAnalytics() {
		footer[models.ColMeltValue] = res.TotalMeltValue
	}
	table.Rows = append(table.Rows, footer)

	return table
}

func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
