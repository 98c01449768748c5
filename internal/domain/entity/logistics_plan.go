package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogisticsPlanEntry records how many units of a product should be physically
// carried from each depot toward open-order fulfilment. Entries are defaulted
// by the planner only where missing, so an operator's manual numbers survive
// recomputation; completing an order consumes the remaining carry amounts.
type LogisticsPlanEntry struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	CarryFromA int            `gorm:"default:0" json:"carry_from_a"`
	CarryFromB int            `gorm:"default:0" json:"carry_from_b"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new plan entry
func (e *LogisticsPlanEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LogisticsPlanEntry model
func (LogisticsPlanEntry) TableName() string {
	return "logistics_plan_entries"
}
