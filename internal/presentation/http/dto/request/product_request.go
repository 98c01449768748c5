package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID   *uuid.UUID `json:"category_id"`
	Name         string     `json:"name" binding:"required,min=1,max=255"`
	Quantity     int        `json:"quantity" binding:"min=0"`
	MinStock     int        `json:"min_stock" binding:"min=0"`
	CostPrice    float64    `json:"cost_price" binding:"min=0"`
	SellingPrice float64    `json:"selling_price" binding:"min=0"`
}

// BulkCreateProductsRequest represents a batch import request
type BulkCreateProductsRequest struct {
	Products []CreateProductRequest `json:"products" binding:"required,min=1,dive"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID   *uuid.UUID `json:"category_id"`
	Name         *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Quantity     *int       `json:"quantity" binding:"omitempty,min=0"`
	MinStock     *int       `json:"min_stock" binding:"omitempty,min=0"`
	CostPrice    *float64   `json:"cost_price" binding:"omitempty,min=0"`
	SellingPrice *float64   `json:"selling_price" binding:"omitempty,min=0"`
}

// AdjustQuantityRequest shifts a product's stock by a signed delta
type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CategoryRequest represents a category create or rename request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
