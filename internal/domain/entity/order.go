package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PaymentDetails is the settlement snapshot taken when an order completes.
// Amounts are stored in cents. A later partial payment bumps TotalPaid and
// may promote Status to Paid, but Cash/Online keep their completion values.
type PaymentDetails struct {
	Method       enum.PaymentMethod `gorm:"size:20;default:'cash'" json:"method"`
	CashAmount   int64              `gorm:"default:0" json:"-"`
	OnlineAmount int64              `gorm:"default:0" json:"-"`
	TotalPaid    int64              `gorm:"default:0" json:"-"`
	Status       enum.PaymentStatus `gorm:"default:0" json:"status"`
}

// Order represents a customer order for print jobs and catalog products.
type Order struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName  string           `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string           `gorm:"size:50" json:"customer_phone"`
	CategoryID    *uuid.UUID       `gorm:"type:uuid;index" json:"category_id,omitempty"`
	OrderDate     time.Time        `gorm:"not null" json:"order_date"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	Status        enum.OrderStatus `gorm:"default:0" json:"status"`
	Discount      int64            `gorm:"default:0" json:"-"` // Stored in cents
	TotalAmount   int64            `gorm:"default:0" json:"-"` // Stored in cents
	Payment       PaymentDetails   `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	Note          string           `gorm:"type:text" json:"note"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Category *Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Discount    float64 `json:"discount"`
		TotalAmount float64 `json:"total_amount"`
		Cash        float64 `json:"cash_amount"`
		Online      float64 `json:"online_amount"`
		TotalPaid   float64 `json:"total_paid"`
	}{
		Alias:       Alias(o),
		Discount:    float64(o.Discount) / 100,
		TotalAmount: float64(o.TotalAmount) / 100,
		Cash:        float64(o.Payment.CashAmount) / 100,
		Online:      float64(o.Payment.OnlineAmount) / 100,
		TotalPaid:   float64(o.Payment.TotalPaid) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// Due returns the outstanding balance in cents, never negative.
func (o *Order) Due() int64 {
	due := o.TotalAmount - o.Payment.TotalPaid
	if due < 0 {
		return 0
	}
	return due
}

// OrderItem is a line item on an order. Price fields are snapshots taken at
// order-creation time and are never recomputed from the live catalog.
// Custom items carry no catalog link and never touch stock or demand.
type OrderItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID    *uuid.UUID     `gorm:"type:uuid;index" json:"product_id,omitempty"`
	ProductName  string         `gorm:"size:255;not null" json:"product_name"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	CostPrice    int64          `gorm:"default:0" json:"-"` // Snapshot, in cents
	SellingPrice int64          `gorm:"default:0" json:"-"` // Snapshot, in cents
	IsCustom     bool           `gorm:"default:false" json:"is_custom"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		CostPrice    float64 `json:"cost_price"`
		SellingPrice float64 `json:"selling_price"`
	}{
		Alias:        Alias(i),
		CostPrice:    float64(i.CostPrice) / 100,
		SellingPrice: float64(i.SellingPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// CountsTowardStock reports whether completing this item should move stock.
func (i *OrderItem) CountsTowardStock() bool {
	return !i.IsCustom && i.ProductID != nil && i.Quantity > 0
}
