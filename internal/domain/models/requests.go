package models

// AddItemRequest is the manual-entry form payload. Negative weights and
// prices are rejected at the binding layer; the acquisition date is free text
// and coerces to unknown when unparsable.
type AddItemRequest struct {
	Description  string  `json:"description" binding:"required"`
	WeightOz     float64 `json:"weight_oz" binding:"min=0"`
	DateAcquired string  `json:"date_acquired"`
	PricePaid    float64 `json:"price_paid" binding:"min=0"`
	Modifier     float64 `json:"modifier"`
}

// Item converts the request into a stack item.
func (r AddItemRequest) Item() Item {
	return Item{
		Description: r.Description,
		WeightOz:    r.WeightOz,
		Acquired:    CoerceDate(r.DateAcquired),
		PricePaid:   r.PricePaid,
		Modifier:    r.Modifier,
	}
}
