package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog product. Quantity is the canonical on-hand
// count; the per-depot split lives in DepotStock and must never exceed it.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Quantity     int            `gorm:"default:0" json:"quantity"`
	MinStock     int            `gorm:"default:0" json:"min_stock"`
	CostPrice    int64          `gorm:"default:0" json:"-"` // Stored in cents
	SellingPrice int64          `gorm:"default:0" json:"-"` // Stored in cents
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetCostPriceDecimal returns the cost price as a decimal (for display)
func (p *Product) GetCostPriceDecimal() float64 {
	return float64(p.CostPrice) / 100
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetCostPriceFromDecimal sets the cost price from a decimal value
func (p *Product) SetCostPriceFromDecimal(price float64) {
	p.CostPrice = int64(price * 100)
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(price * 100)
}

// CategoryName returns the category name, or "" when uncategorized.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		CostPrice    float64 `json:"cost_price"`
		SellingPrice float64 `json:"selling_price"`
	}{
		Alias:        Alias(p),
		CostPrice:    p.GetCostPriceDecimal(),
		SellingPrice: p.GetSellingPriceDecimal(),
	})
}

// Category represents a tag assignable to products and orders. The seeded
// "unpaid" slug is special: assigning it to an order creates an UnpaidWriting.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// UnpaidCategorySlug marks the category whose assignment auto-creates a
// credit record for the order.
const UnpaidCategorySlug = "unpaid"

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
