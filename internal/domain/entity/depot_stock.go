package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepotStock splits a product's canonical quantity across the two physical
// depots. A record is created lazily on the first split edit or the first
// completion touching the product. The stored values may drift above the
// canonical quantity between writes; readers must go through Split.Clamp.
type DepotStock struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	DepotAStock int            `gorm:"default:0" json:"depot_a_stock"`
	DepotBStock int            `gorm:"default:0" json:"depot_b_stock"`
	LastUpdated time.Time      `json:"last_updated"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new depot stock record
func (d *DepotStock) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DepotStock model
func (DepotStock) TableName() string {
	return "depot_stocks"
}

// Split is the reader-facing view of a product's depot split.
type Split struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Total returns the summed split.
func (s Split) Total() int {
	return s.A + s.B
}

// Clamp reconciles the split against the canonical quantity. When the sum
// exceeds it, depot B is clamped down first and depot A takes the remainder,
// so depot A absorbs every adjustment.
func (s Split) Clamp(canonical int) Split {
	if canonical < 0 {
		canonical = 0
	}
	if s.A < 0 {
		s.A = 0
	}
	if s.B < 0 {
		s.B = 0
	}
	if s.A+s.B <= canonical {
		return s
	}
	if s.B > canonical {
		s.B = canonical
	}
	s.A = canonical - s.B
	return s
}
