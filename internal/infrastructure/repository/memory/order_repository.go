package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	domainRepo "github.com/mainakibe/printdesk-api/internal/domain/repository"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]entity.Order
}

// NewOrderRepository creates an empty in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[uuid.UUID]entity.Order)}
}

var _ domainRepo.OrderRepository = (*OrderRepository)(nil)

func cloneOrder(o entity.Order) entity.Order {
	items := make([]entity.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	clone := cloneOrder(order)
	return &clone, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.orders[order.ID]
	if !ok {
		return nil
	}
	updated := cloneOrder(*order)
	updated.Items = existing.Items // items are managed via ReplaceItems
	updated.UpdatedAt = time.Now()
	r.orders[order.ID] = updated
	return nil
}

func (r *OrderRepository) ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil
	}
	next := make([]entity.OrderItem, len(items))
	copy(next, items)
	for i := range next {
		next[i].ID = uuid.New()
		next[i].OrderID = orderID
	}
	order.Items = next
	order.UpdatedAt = time.Now()
	r.orders[orderID] = order
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *OrderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(o.CustomerName), needle) &&
				!strings.Contains(o.CustomerPhone, params.Search) {
				continue
			}
		}
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		if params.StartDate != nil && o.OrderDate.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && o.OrderDate.After(*params.EndDate) {
			continue
		}
		matched = append(matched, cloneOrder(o))
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	params.Pagination.Validate()
	start := params.Pagination.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *OrderRepository) ListByStatus(ctx context.Context, status enum.OrderStatus) ([]entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.Order
	for _, o := range r.orders {
		if o.Status == status {
			result = append(result, cloneOrder(o))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

type PartialPaymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]entity.PartialPayment
}

// NewPartialPaymentRepository creates an empty in-memory partial payment repository
func NewPartialPaymentRepository() *PartialPaymentRepository {
	return &PartialPaymentRepository{payments: make(map[uuid.UUID]entity.PartialPayment)}
}

var _ domainRepo.PartialPaymentRepository = (*PartialPaymentRepository)(nil)

func (r *PartialPaymentRepository) Create(ctx context.Context, payment *entity.PartialPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.CreatedAt = time.Now()
	r.payments[payment.ID] = *payment
	return nil
}

func (r *PartialPaymentRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.PartialPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.PartialPayment
	for _, p := range r.payments {
		if p.OrderID == orderID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PaidAt.Before(result[j].PaidAt) })
	return result, nil
}

func (r *PartialPaymentRepository) SumByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum int64
	for _, p := range r.payments {
		if p.OrderID == orderID {
			sum += p.Amount
		}
	}
	return sum, nil
}
