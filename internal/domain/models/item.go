package models

import "math"

// Item is one row of the stack: a physical piece of silver. Numeric fields
// hold NaN when the source cell was blank or unparsable; NaN resolves to zero
// at computation time and back to a blank cell on export.
type Item struct {
	Description string
	WeightOz    float64 // troy ounces
	Acquired    Date
	PricePaid   float64
	Modifier    float64 // signed: collector premium (+) or damage deduction (-)
}

// Row renders the item as a canonical table row. NaN numerics and the
// unknown date become nil cells so the row survives JSON encoding.
func (it Item) Row() map[string]any {
	row := map[string]any{
		ColDescription: it.Description,
		ColWeight:      numOrNil(it.WeightOz),
		ColPricePaid:   numOrNil(it.PricePaid),
		ColModifier:    numOrNil(it.Modifier),
	}
	if it.Acquired.IsZero() {
		row[ColDateAcquired] = nil
	} else {
		row[ColDateAcquired] = it.Acquired
	}
	return row
}

func numOrNil(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

// Inventory is the ordered stack owned by one session. Row order matters for
// display only; every aggregate over it is order independent.
type Inventory []Item

// Table converts the inventory back to its canonical tabular form. The
// result normalizes to an identical inventory.
func (inv Inventory) Table() RawTable {
	t := RawTable{
		Columns: CanonicalColumns(),
		Rows:    make([]map[string]any, 0, len(inv)),
	}
	for _, it := range inv {
		t.Rows = append(t.Rows, it.Row())
	}
	return t
}
