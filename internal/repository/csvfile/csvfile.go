// Package csvfile reads and writes the stack's save format: a five-column
// CSV whose blank cells round-trip to the pipeline's unknown values.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
)

const (
	exportPrefix = "silver_stack_troy_oz_"

	// SampleFileName names the starter template download.
	SampleFileName = "silver_stack_sample.csv"
)

// Decode reads a save file into a raw table: the header row becomes the
// columns and every cell stays text. Typing happens later in normalization.
func Decode(r io.Reader) (models.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return models.RawTable{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return models.RawTable{}, nil
	}

	columns := make([]string, len(records[0]))
	for i, col := range records[0] {
		columns[i] = strings.TrimSpace(col)
	}

	rows := make([]map[string]any, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return models.RawTable{Columns: columns, Rows: rows}, nil
}

// Encode writes the inventory in the canonical five-column format. NaN cells
// and unknown dates become blank so a later import restores them unchanged.
func Encode(w io.Writer, inv models.Inventory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.CanonicalColumns()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, it := range inv {
		record := []string{
			it.Description,
			cell(it.WeightOz),
			it.Acquired.String(),
			cell(it.PricePaid),
			cell(it.Modifier),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// cell renders a numeric cell, blank for NaN. The shortest exact decimal
// keeps round-trips lossless.
func cell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportFileName returns the dated download name for a save file.
func ExportFileName(on time.Time) string {
	return exportPrefix + on.Format(models.DateFormat) + ".csv"
}

// Sample renders the one-row starter template offered to new users.
func Sample(on time.Time) ([]byte, error) {
	inv := models.Inventory{{
		Description: "Example 1 oz Round",
		WeightOz:    1.0,
		Acquired:    models.DateOf(on),
		PricePaid:   25.00,
	}}

	var buf bytes.Buffer
	if err := Encode(&buf, inv); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
