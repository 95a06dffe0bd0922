package models

// ValuationResult carries the aggregate metrics of one evaluation pass.
// It is derived data: recomputed whole whenever the inventory or the spot
// price changes, never persisted.
//
// PerItemMelt is aligned with the inventory rows it was computed from. It is
// nil when the stack has no positive weight, in which case every total is
// exactly zero.
type ValuationResult struct {
	PerItemMelt    []float64 `json:"per_item_melt,omitempty"`
	TotalWeightOz  float64   `json:"total_weight_oz"`
	TotalMeltValue float64   `json:"total_melt_value"`
	TotalPaid      float64   `json:"total_paid"`
	ProfitLoss     float64   `json:"profit_loss"`
}

// HasAnalytics reports whether the stack carried enough weight for the
// valuation to be meaningful.
func (r ValuationResult) HasAnalytics() bool {
	return r.TotalWeightOz > 0
}
