package request

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemRequest represents one line item on an incoming order. Catalog
// items need a product_id; custom items need a name and selling price.
type OrderItemRequest struct {
	ProductID    *uuid.UUID `json:"product_id"`
	ProductName  string     `json:"product_name" binding:"omitempty,max=255"`
	Quantity     int        `json:"quantity" binding:"required,min=1"`
	CostPrice    float64    `json:"cost_price" binding:"min=0"`
	SellingPrice float64    `json:"selling_price" binding:"min=0"`
	IsCustom     bool       `json:"is_custom"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required,min=1,max=255"`
	CustomerPhone string             `json:"customer_phone" binding:"omitempty,max=50"`
	CategoryID    *uuid.UUID         `json:"category_id"`
	OrderDate     *time.Time         `json:"order_date"`
	Discount      float64            `json:"discount" binding:"min=0"`
	Note          string             `json:"note"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PaymentRequest represents the settlement submitted with a status change
type PaymentRequest struct {
	Method       string  `json:"method" binding:"required,oneof=cash online split"`
	Status       string  `json:"status" binding:"required,oneof=Unpaid Partial Paid"`
	CashAmount   float64 `json:"cash_amount" binding:"min=0"`
	OnlineAmount float64 `json:"online_amount" binding:"min=0"`
}

// UpdateOrderStatusRequest represents an order status change request
type UpdateOrderStatusRequest struct {
	Status  string          `json:"status" binding:"required,oneof=Pending Delivered Completed"`
	Payment *PaymentRequest `json:"payment"`
}

// EditOrderRequest represents an order edit request. Omitted fields keep
// their current values; a non-null items array replaces the full list.
type EditOrderRequest struct {
	CustomerName  *string            `json:"customer_name" binding:"omitempty,min=1,max=255"`
	CustomerPhone *string            `json:"customer_phone" binding:"omitempty,max=50"`
	CategoryID    *uuid.UUID         `json:"category_id"`
	OrderDate     *time.Time         `json:"order_date"`
	Discount      *float64           `json:"discount" binding:"omitempty,min=0"`
	Note          *string            `json:"note"`
	Items         []OrderItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// PartialPaymentRequest represents an installment against an order's balance
type PartialPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Note   string  `json:"note"`
}

// AssignCategoryRequest files an order under a category
type AssignCategoryRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
