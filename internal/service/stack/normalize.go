// Package stack owns the inventory: normalization of arbitrary tabular input
// into typed items, the pure mutation operations over them, and the
// per-session storage holding each user's working copy.
package stack

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
)

// Normalize converts a table of unknown shape into a typed inventory. It
// never fails: unknown columns are ignored, bad cells coerce to their
// defaults, and structural problems surface as warnings instead of errors.
// Normalizing the table of an already normalized inventory yields an
// identical inventory.
func Normalize(table models.RawTable) (models.Inventory, []string) {
	table = renameLegacyWeight(table)

	var warnings []string
	if missing := table.MissingColumns(); len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"table is missing expected columns: %s", strings.Join(missing, ", ")))
	}

	inv := make(models.Inventory, 0, len(table.Rows))
	for _, row := range table.Rows {
		desc := coerceString(row[models.ColDescription])
		if isTotalsRow(desc) {
			continue
		}
		inv = append(inv, models.Item{
			Description: desc,
			WeightOz:    coerceNonNegative(row[models.ColWeight]),
			Acquired:    models.CoerceDate(row[models.ColDateAcquired]),
			PricePaid:   coerceNonNegative(row[models.ColPricePaid]),
			Modifier:    coerceNumber(row[models.ColModifier]),
		})
	}
	return inv, warnings
}

// renameLegacyWeight maps the old weight column onto the canonical one. The
// input table is never mutated; rows are copied when the rename applies.
func renameLegacyWeight(table models.RawTable) models.RawTable {
	if !table.HasColumn(models.ColLegacyWeight) || table.HasColumn(models.ColWeight) {
		return table
	}

	out := models.RawTable{
		Columns: make([]string, len(table.Columns)),
		Rows:    make([]map[string]any, 0, len(table.Rows)),
	}
	for i, col := range table.Columns {
		if col == models.ColLegacyWeight {
			col = models.ColWeight
		}
		out.Columns[i] = col
	}
	for _, row := range table.Rows {
		copied := make(map[string]any, len(row))
		for k, v := range row {
			if k == models.ColLegacyWeight {
				k = models.ColWeight
			}
			copied[k] = v
		}
		out.Rows = append(out.Rows, copied)
	}
	return out
}

// isTotalsRow spots the reserved display footer so it never re-enters the
// data path.
func isTotalsRow(description string) bool {
	return strings.EqualFold(strings.TrimSpace(description), models.TotalsMarker)
}

func coerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// coerceNumber parses one cell as a float. Blank, unparsable, and non-finite
// inputs all become NaN; NaN resolves to zero at computation time.
func coerceNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return finiteOrNaN(x)
	case float32:
		return finiteOrNaN(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return math.NaN()
		}
		return finiteOrNaN(f)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return finiteOrNaN(f)
	default:
		return math.NaN()
	}
}

// coerceNonNegative handles fields whose domain excludes negatives (weights
// and prices). Out-of-domain values are invalid input and coerce to NaN like
// any other bad cell.
func coerceNonNegative(v any) float64 {
	f := coerceNumber(v)
	if f < 0 {
		return math.NaN()
	}
	return f
}

func finiteOrNaN(f float64) float64 {
	if math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}
