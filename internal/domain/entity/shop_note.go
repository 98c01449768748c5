package entity

import "time"

// Well-known scratch note keys.
const (
	NoteKeyGeneral       = "general"
	NoteKeyNeedsPriority = "needs-priority"
)

// ShopNote is a free-text scratch pad persisted under a fixed key. The shop
// keeps two: a general note and a needs-priority note.
type ShopNote struct {
	Key       string    `gorm:"size:50;primary_key" json:"key"`
	Body      string    `gorm:"type:text" json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the ShopNote model
func (ShopNote) TableName() string {
	return "shop_notes"
}
