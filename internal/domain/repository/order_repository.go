package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations.
// GetByID and the listing methods always load line items.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// Update persists the order row only; items are managed via ReplaceItems.
	Update(ctx context.Context, order *entity.Order) error
	// ReplaceItems swaps an order's full line-item list for a new one.
	ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListByStatus returns every order in the given status, items included.
	// The demand aggregator scans Pending orders through this.
	ListByStatus(ctx context.Context, status enum.OrderStatus) ([]entity.Order, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// PartialPaymentRepository defines the interface for partial payment records
type PartialPaymentRepository interface {
	Create(ctx context.Context, payment *entity.PartialPayment) error
	ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.PartialPayment, error)
	SumByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error)
}
