package valuation

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
)

func testQuote(value float64) models.PriceQuote {
	return models.PriceQuote{
		Value:     value,
		FetchedAt: time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
		Source:    models.SourceLive,
	}
}

func TestBuildReport(t *testing.T) {
	inv := models.Inventory{
		{Description: "bar", WeightOz: 10.0, PricePaid: 250.0},
		{Description: "scratched round", WeightOz: 1.0, PricePaid: 40.0, Modifier: -2.0},
	}

	report := BuildReport(inv, testQuote(30.00))

	assert.Equal(t, 2, report.Items)
	assert.True(t, report.HasAnalytics)
	assert.Empty(t, report.Notice)

	assert.Equal(t, "$30.00/oz", report.Metrics.SpotPrice.Display)
	assert.Equal(t, "11.00 troy oz", report.Metrics.TotalWeight.Display)
	assert.Equal(t, "$328.00", report.Metrics.MeltValue.Display)
	assert.Equal(t, "$290.00", report.Metrics.TotalPaid.Display)
	assert.Equal(t, "$38.00", report.Metrics.ProfitLoss.Display)

	require.Len(t, report.Table.Rows, 3)
	assert.Len(t, report.Stats.Facts, 5)
}

func TestBuildReportEmptyStack(t *testing.T) {
	report := BuildReport(nil, testQuote(30.00))

	assert.Zero(t, report.Items)
	assert.False(t, report.HasAnalytics)
	assert.NotEmpty(t, report.Notice)
	assert.Empty(t, report.Table.Rows)
	assert.Equal(t, "$0.00", report.Metrics.MeltValue.Display)
}

func TestReportMarshalsCleanly(t *testing.T) {
	// NaN cells must come out as JSON null; encoding/json fails hard on a
	// bare NaN anywhere in the payload.
	inv := models.Inventory{
		{Description: "bar", WeightOz: 10.0, PricePaid: 250.0},
		{Description: "mystery lot", WeightOz: math.NaN(), PricePaid: math.NaN(), Modifier: math.NaN()},
	}

	report := BuildReport(inv, testQuote(30.00))

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fetched_at"`)
	assert.NotContains(t, string(data), "NaN")
}
