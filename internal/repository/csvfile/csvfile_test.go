package csvfile

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
	"github.com/OilLobbyist/silver-tracker/internal/service/stack"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inv := models.Inventory{
		{
			Description: "kilo bar",
			WeightOz:    32.15,
			Acquired:    models.NewDate(2023, time.November, 20),
			PricePaid:   780,
			Modifier:    12.5,
		},
		{
			Description: "mystery lot, with comma",
			WeightOz:    math.NaN(),
			PricePaid:   math.NaN(),
			Modifier:    math.NaN(),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, inv))

	table, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, models.CanonicalColumns(), table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "kilo bar", table.Rows[0][models.ColDescription])
	assert.Equal(t, "32.15", table.Rows[0][models.ColWeight])
	assert.Equal(t, "", table.Rows[1][models.ColWeight])

	back, warnings := stack.Normalize(table)
	require.Empty(t, warnings)
	require.Len(t, back, 2)

	assert.Equal(t, inv[0], back[0])
	assert.Equal(t, inv[1].Description, back[1].Description)
	assert.True(t, math.IsNaN(back[1].WeightOz))
	assert.True(t, math.IsNaN(back[1].PricePaid))
	assert.True(t, math.IsNaN(back[1].Modifier))
	assert.True(t, back[1].Acquired.IsZero())
}

func TestDecodeRaggedRows(t *testing.T) {
	input := strings.Join([]string{
		"Description,Weight (troy oz),Date Acquired,Price Paid ($),Modifier ($)",
		"short row,1.5",
		"long row,2.0,2024-01-01,50,0,EXTRA",
	}, "\n")

	table, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "", table.Rows[0][models.ColPricePaid])
	assert.Equal(t, "50", table.Rows[1][models.ColPricePaid])
}

func TestDecodeEmptyInput(t *testing.T) {
	table, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestDecodeMalformedCSV(t *testing.T) {
	_, err := Decode(strings.NewReader("a,b\n\"unclosed"))
	assert.Error(t, err)
}

func TestExportFileName(t *testing.T) {
	on := time.Date(2026, time.August, 23, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "silver_stack_troy_oz_2026-08-23.csv", ExportFileName(on))
}

func TestSampleNormalizes(t *testing.T) {
	on := time.Date(2026, time.August, 23, 10, 30, 0, 0, time.UTC)

	data, err := Sample(on)
	require.NoError(t, err)

	table, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	inv, warnings := stack.Normalize(table)
	require.Empty(t, warnings)
	require.Len(t, inv, 1)
	assert.Equal(t, "Example 1 oz Round", inv[0].Description)
	assert.Equal(t, 1.0, inv[0].WeightOz)
	assert.Equal(t, 25.00, inv[0].PricePaid)
	assert.Equal(t, models.NewDate(2026, time.August, 23), inv[0].Acquired)
}
