package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is one saved calculation: the input as entered plus the
// result derived from it, tagged with the owning user.
type HistoryRecord struct {
	ID        string            `json:"id"`
	OwnerID   string            `json:"ownerId"`
	CreatedAt time.Time         `json:"createdAt"`
	Input     CostInput         `json:"input"`
	Result    CalculationResult `json:"result"`
}

// NewHistoryRecord builds a record for the given owner. Disabled accessory
// rows are stripped from the stored input.
func NewHistoryRecord(ownerID string, input CostInput, result CalculationResult) HistoryRecord {
	stored := input
	stored.Accessories = input.EnabledAccessories()
	return HistoryRecord{
		ID:        uuid.New().String()[:8],
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
		Input:     stored,
		Result:    result,
	}
}
