package request

import "github.com/google/uuid"

// SetDepotSplitRequest sets a product's per-depot stock counts
type SetDepotSplitRequest struct {
	DepotA int `json:"depot_a" binding:"min=0"`
	DepotB int `json:"depot_b" binding:"min=0"`
}

// UpdatePlanEntryRequest overrides one side of a product's carry plan
type UpdatePlanEntryRequest struct {
	Field string `json:"field" binding:"required,oneof=carry_from_a carry_from_b"`
	Value int    `json:"value"`
}

// ManualNeedRequest records a manual purchasing need for a product
type ManualNeedRequest struct {
	ProductID     uuid.UUID `json:"product_id" binding:"required"`
	TotalRequired int       `json:"total_required" binding:"min=0"`
	Note          string    `json:"note"`
}

// UnpaidWritingRequest represents a manual credit-book entry
type UnpaidWritingRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=255"`
	CustomerName string  `json:"customer_name" binding:"omitempty,max=255"`
	Amount       float64 `json:"amount" binding:"min=0"`
}

// UpdateUnpaidWritingRequest updates a credit-book entry
type UpdateUnpaidWritingRequest struct {
	Title        *string  `json:"title" binding:"omitempty,min=1,max=255"`
	CustomerName *string  `json:"customer_name" binding:"omitempty,max=255"`
	Amount       *float64 `json:"amount" binding:"omitempty,min=0"`
}

// NoteRequest overwrites one of the scratch notes
type NoteRequest struct {
	Body string `json:"body"`
}
