package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManualNeed is an operator-entered purchasing requirement, independent of
// order-derived demand. At most one active need exists per product; re-adding
// replaces the amount and note but keeps the original record.
type ManualNeed struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	TotalRequired int            `gorm:"default:0" json:"total_required"`
	Note          string         `gorm:"type:text" json:"note"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new manual need
func (n *ManualNeed) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ManualNeed model
func (ManualNeed) TableName() string {
	return "manual_needs"
}
