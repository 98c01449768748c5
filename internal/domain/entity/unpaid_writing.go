package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnpaidWriting is a credit-book entry: an amount a customer still owes.
// It may be free-standing or linked to an order; assigning the "unpaid"
// category to an order creates one automatically (once per order). The sync
// is one-way only; editing or deleting the writing leaves the category tag alone.
type UnpaidWriting struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      *uuid.UUID     `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	CustomerName string         `gorm:"size:255" json:"customer_name"`
	Amount       int64          `gorm:"default:0" json:"-"` // Stored in cents
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON converts the cents amount to a decimal for API responses
func (w UnpaidWriting) MarshalJSON() ([]byte, error) {
	type Alias UnpaidWriting
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(w),
		Amount: float64(w.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new writing
func (w *UnpaidWriting) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UnpaidWriting model
func (UnpaidWriting) TableName() string {
	return "unpaid_writings"
}

// PartialPayment is an incremental payment recorded against an order after
// completion, distinct from the completion payment snapshot.
type PartialPayment struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	Amount    int64          `gorm:"not null" json:"-"` // Stored in cents
	Note      string         `gorm:"type:text" json:"note"`
	PaidAt    time.Time      `json:"paid_at"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON converts the cents amount to a decimal for API responses
func (p PartialPayment) MarshalJSON() ([]byte, error) {
	type Alias PartialPayment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new partial payment
func (p *PartialPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PartialPayment model
func (PartialPayment) TableName() string {
	return "partial_payments"
}
