package stack

import (
	"math"

	"go.uber.org/zap"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
)

// Service applies the inventory operations. Every mutation is a pure
// function from the previous inventory to the next; callers swap the result
// into session storage, so no shared state is ever edited in place.
type Service struct {
	logger *zap.Logger
}

// NewService creates the inventory service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Import replaces the whole stack with an uploaded table.
func (s *Service) Import(table models.RawTable) (models.Inventory, []string) {
	inv, warnings := Normalize(table)
	s.logger.Info("stack imported",
		zap.Int("rows", len(table.Rows)),
		zap.Int("items", len(inv)),
		zap.Strings("warnings", warnings))
	return inv, warnings
}

// Replace swaps in an edited table wholesale, last write wins.
func (s *Service) Replace(table models.RawTable) (models.Inventory, []string) {
	inv, warnings := Normalize(table)
	s.logger.Info("stack replaced",
		zap.Int("items", len(inv)),
		zap.Strings("warnings", warnings))
	return inv, warnings
}

// Add appends one manually entered item. Negative and NaN weights or prices
// are sanitized to zero so a hand-built item cannot bypass the rules uploads
// go through.
func (s *Service) Add(inv models.Inventory, item models.Item) models.Inventory {
	item.WeightOz = sanitizeNonNegative(item.WeightOz)
	item.PricePaid = sanitizeNonNegative(item.PricePaid)
	if math.IsNaN(item.Modifier) {
		item.Modifier = 0
	}

	next := make(models.Inventory, 0, len(inv)+1)
	next = append(next, inv...)
	next = append(next, item)

	s.logger.Info("item added",
		zap.String("description", item.Description),
		zap.Float64("weight_oz", item.WeightOz))
	return next
}

func sanitizeNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
