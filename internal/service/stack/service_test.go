package stack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
)

func TestServiceAddAppendsWithoutMutating(t *testing.T) {
	svc := NewService(nil)
	original := models.Inventory{{Description: "first", WeightOz: 1}}

	next := svc.Add(original, models.Item{Description: "second", WeightOz: 2})

	require.Len(t, next, 2)
	assert.Equal(t, "second", next[1].Description)
	assert.Len(t, original, 1)
}

func TestServiceAddSanitizesNumbers(t *testing.T) {
	svc := NewService(nil)

	next := svc.Add(nil, models.Item{
		Description: "odd lot",
		WeightOz:    -4,
		PricePaid:   math.NaN(),
		Modifier:    math.NaN(),
	})

	require.Len(t, next, 1)
	assert.Equal(t, 0.0, next[0].WeightOz)
	assert.Equal(t, 0.0, next[0].PricePaid)
	assert.Equal(t, 0.0, next[0].Modifier)
}

func TestServiceImportThenReplace(t *testing.T) {
	svc := NewService(nil)

	imported, warnings := svc.Import(models.RawTable{
		Columns: models.CanonicalColumns(),
		Rows: []map[string]any{
			{models.ColDescription: "bar", models.ColWeight: 10.0, models.ColPricePaid: 250.0, models.ColModifier: 0.0},
			{models.ColDescription: "round", models.ColWeight: 1.0, models.ColPricePaid: 30.0, models.ColModifier: 0.0},
		},
	})
	require.Len(t, imported, 2)
	assert.Empty(t, warnings)

	replaced, _ := svc.Replace(models.RawTable{
		Columns: models.CanonicalColumns(),
		Rows: []map[string]any{
			{models.ColDescription: "bar", models.ColWeight: 10.0, models.ColPricePaid: 250.0, models.ColModifier: 0.0},
		},
	})
	require.Len(t, replaced, 1)
	assert.Equal(t, "bar", replaced[0].Description)
}
