package valuation

import "github.com/OilLobbyist/silver-tracker/internal/domain/models"

// Metric is one headline figure with its preformatted display string.
type Metric struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Metrics are the dashboard headline figures.
type Metrics struct {
	SpotPrice   Metric `json:"spot_price"`
	TotalWeight Metric `json:"total_weight"`
	MeltValue   Metric `json:"melt_value"`
	TotalPaid   Metric `json:"total_paid"`
	ProfitLoss  Metric `json:"profit_loss"`
}

// Report is the full dashboard payload for one session: the quote it was
// priced against, headline metrics, the augmented item table, and the
// derived statistics.
type Report struct {
	Quote        models.PriceQuote      `json:"quote"`
	Items        int                    `json:"items"`
	HasAnalytics bool                   `json:"has_analytics"`
	Notice       string                 `json:"notice,omitempty"`
	Metrics      Metrics                `json:"metrics"`
	Valuation    models.ValuationResult `json:"valuation"`
	Table        models.RawTable        `json:"table"`
	Stats        models.StackStats      `json:"stats"`
}

const noAnalyticsNotice = "Add items with a non-zero weight to see melt value analytics."

// BuildReport assembles the dashboard for one inventory at one quote.
func BuildReport(inv models.Inventory, quote models.PriceQuote) Report {
	res := Evaluate(inv, quote.Value)

	report := Report{
		Quote:        quote,
		Items:        len(inv),
		HasAnalytics: res.HasAnalytics(),
		Metrics: Metrics{
			SpotPrice:   Metric{Value: quote.Value, Display: models.USD(quote.Value) + "/oz"},
			TotalWeight: Metric{Value: res.TotalWeightOz, Display: models.Grouped(res.TotalWeightOz, 2) + " troy oz"},
			MeltValue:   Metric{Value: res.TotalMeltValue, Display: models.USD(res.TotalMeltValue)},
			TotalPaid:   Metric{Value: res.TotalPaid, Display: models.USD(res.TotalPaid)},
			ProfitLoss:  Metric{Value: res.ProfitLoss, Display: models.USD(res.ProfitLoss)},
		},
		Valuation: res,
		Table:     DisplayTable(inv, res),
		Stats:     DeriveStats(res.TotalWeightOz),
	}
	if !report.HasAnalytics {
		report.Notice = noAnalyticsNotice
	}
	return report
}
