package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/pkg/apperror"
	"github.com/mainakibe/printdesk-api/pkg/pagination"
)

// OrderService handles order-related operations, including the stock side
// effects of crossing the completed boundary.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	paymentRepo repository.PartialPaymentRepository
	stock       *StockService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PartialPaymentRepository,
	stock *StockService,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		paymentRepo: paymentRepo,
		stock:       stock,
	}
}

// OrderItemInput represents one line item on an incoming order
type OrderItemInput struct {
	ProductID    *uuid.UUID
	ProductName  string
	Quantity     int
	CostPrice    int64
	SellingPrice int64
	IsCustom     bool
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	CategoryID    *uuid.UUID
	OrderDate     *time.Time
	Discount      int64
	Note          string
	Items         []OrderItemInput
}

// buildItems resolves catalog-backed line items against the live catalog and
// snapshots names and prices onto the order. A vanished product degrades to
// the caller-supplied snapshot instead of failing the order.
func (s *OrderService) buildItems(ctx context.Context, inputs []OrderItemInput) ([]entity.OrderItem, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for i := range inputs {
		if !inputs[i].IsCustom && inputs[i].ProductID != nil {
			ids = append(ids, *inputs[i].ProductID)
		}
	}

	productMap := make(map[uuid.UUID]*entity.Product)
	if len(ids) > 0 {
		products, err := s.productRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range products {
			productMap[products[i].ID] = &products[i]
		}
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			continue
		}
		item := entity.OrderItem{
			ProductID:    in.ProductID,
			ProductName:  in.ProductName,
			Quantity:     in.Quantity,
			CostPrice:    in.CostPrice,
			SellingPrice: in.SellingPrice,
			IsCustom:     in.IsCustom,
		}
		if in.IsCustom {
			item.ProductID = nil
		} else if in.ProductID != nil {
			if product := productMap[*in.ProductID]; product != nil {
				item.ProductName = product.Name
				item.CostPrice = product.CostPrice
				item.SellingPrice = product.SellingPrice
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func orderTotal(items []entity.OrderItem, discount int64) int64 {
	var total int64
	for i := range items {
		total += items[i].SellingPrice * int64(items[i].Quantity)
	}
	total -= discount
	if total < 0 {
		total = 0
	}
	return total
}

// CreateOrder creates a new order in the pending state. Prices are
// snapshotted from the catalog at this point and never recomputed.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if input.CustomerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one item")
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one item with a positive quantity")
	}

	discount := input.Discount
	if discount < 0 {
		discount = 0
	}

	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	order := &entity.Order{
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CategoryID:    input.CategoryID,
		OrderDate:     orderDate,
		Status:        enum.OrderStatusPending,
		Discount:      discount,
		TotalAmount:   orderTotal(items, discount),
		Note:          input.Note,
		Items:         items,
		Payment: entity.PaymentDetails{
			Method: enum.PaymentMethodCash,
			Status: enum.PaymentStatusUnpaid,
		},
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder retrieves an order by ID, items included
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with pagination and filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// PaymentInput represents the settlement details submitted with a status change
type PaymentInput struct {
	Method       enum.PaymentMethod
	Status       enum.PaymentStatus
	CashAmount   int64
	OnlineAmount int64
}

// UpdateStatusInput represents the update status input. Payment is optional;
// when omitted the order keeps its current payment details.
type UpdateStatusInput struct {
	Status  enum.OrderStatus
	Payment *PaymentInput
}

// validatePayment is the one hard gate in the payment flow: a split payment
// marked paid must account for the exact order total, in cents.
func validatePayment(order *entity.Order, in *PaymentInput) error {
	if !in.Method.Valid() {
		return apperror.NewBadRequestError("Unknown payment method: " + string(in.Method))
	}
	if in.Method == enum.PaymentMethodSplit && in.Status == enum.PaymentStatusPaid {
		if in.CashAmount+in.OnlineAmount != order.TotalAmount {
			return apperror.NewValidationError([]apperror.FieldError{{
				Field:   "payment",
				Message: "Split payment amounts must add up to the order total",
			}})
		}
	}
	return nil
}

// applyPayment folds the submitted settlement into the order's payment
// snapshot. A single-method full payment with no amount entered is taken to
// mean the whole total; a partial balance that reaches the total promotes
// itself to paid.
func applyPayment(order *entity.Order, in *PaymentInput) {
	order.Payment.Method = in.Method
	order.Payment.Status = in.Status

	switch in.Method {
	case enum.PaymentMethodSplit:
		order.Payment.CashAmount = in.CashAmount
		order.Payment.OnlineAmount = in.OnlineAmount
		order.Payment.TotalPaid = in.CashAmount + in.OnlineAmount
	case enum.PaymentMethodCash:
		amount := in.CashAmount
		if amount == 0 && in.Status == enum.PaymentStatusPaid {
			amount = order.TotalAmount
		}
		order.Payment.CashAmount = amount
		order.Payment.OnlineAmount = 0
		order.Payment.TotalPaid = amount
	case enum.PaymentMethodOnline:
		amount := in.OnlineAmount
		if amount == 0 && in.Status == enum.PaymentStatusPaid {
			amount = order.TotalAmount
		}
		order.Payment.OnlineAmount = amount
		order.Payment.CashAmount = 0
		order.Payment.TotalPaid = amount
	}

	if order.Payment.Status == enum.PaymentStatusPartial && order.Payment.TotalPaid >= order.TotalAmount {
		order.Payment.Status = enum.PaymentStatusPaid
	}
}

// UpdateStatus moves an order between statuses. Stock is touched only when
// the order crosses the completed boundary: entering completed deducts each
// catalog-backed item, leaving it restores them. The payment gate runs
// before any mutation so a rejected settlement leaves everything untouched.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, input *UpdateStatusInput) (*entity.Order, error) {
	if !input.Status.Valid() {
		return nil, apperror.NewBadRequestError("Unknown order status")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.Payment != nil {
		if err := validatePayment(order, input.Payment); err != nil {
			return nil, err
		}
	}

	wasCompleted := order.Status == enum.OrderStatusCompleted
	willComplete := input.Status == enum.OrderStatusCompleted

	if input.Payment != nil {
		applyPayment(order, input.Payment)
	}
	order.Status = input.Status

	switch {
	case willComplete && !wasCompleted:
		for i := range order.Items {
			item := &order.Items[i]
			if !item.CountsTowardStock() {
				continue
			}
			if err := s.stock.ApplyCompletionDeduction(ctx, *item.ProductID, item.Quantity); err != nil {
				return nil, err
			}
		}
		now := time.Now()
		order.CompletedAt = &now
	case wasCompleted && !willComplete:
		for i := range order.Items {
			item := &order.Items[i]
			if !item.CountsTowardStock() {
				continue
			}
			if err := s.stock.RevertCompletionDeduction(ctx, *item.ProductID, item.Quantity); err != nil {
				return nil, err
			}
		}
		order.CompletedAt = nil
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// EditOrderInput represents the edit order input. Nil fields keep their
// current values; a non-nil Items slice replaces the full line-item list.
type EditOrderInput struct {
	CustomerName  *string
	CustomerPhone *string
	CategoryID    *uuid.UUID
	OrderDate     *time.Time
	Discount      *int64
	Note          *string
	Items         []OrderItemInput
}

// EditOrder updates an order's fields and, when items are supplied, replaces
// its line items. Editing a completed order reverts the old items' stock
// effects and applies the new ones, so the ledgers track the edited reality.
func (s *OrderService) EditOrder(ctx context.Context, id uuid.UUID, input *EditOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.CustomerName != nil {
		order.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		order.CustomerPhone = *input.CustomerPhone
	}
	if input.CategoryID != nil {
		order.CategoryID = input.CategoryID
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if input.Note != nil {
		order.Note = *input.Note
	}
	if input.Discount != nil {
		order.Discount = *input.Discount
		if order.Discount < 0 {
			order.Discount = 0
		}
	}

	completed := order.Status == enum.OrderStatusCompleted

	if input.Items != nil {
		newItems, err := s.buildItems(ctx, input.Items)
		if err != nil {
			return nil, err
		}
		if len(newItems) == 0 {
			return nil, apperror.NewBadRequestError("Order must have at least one item with a positive quantity")
		}

		if completed {
			for i := range order.Items {
				item := &order.Items[i]
				if !item.CountsTowardStock() {
					continue
				}
				if err := s.stock.RevertCompletionDeduction(ctx, *item.ProductID, item.Quantity); err != nil {
					return nil, err
				}
			}
		}

		if err := s.orderRepo.ReplaceItems(ctx, id, newItems); err != nil {
			return nil, err
		}
		order.Items = newItems

		if completed {
			for i := range newItems {
				item := &newItems[i]
				if !item.CountsTowardStock() {
					continue
				}
				if err := s.stock.ApplyCompletionDeduction(ctx, *item.ProductID, item.Quantity); err != nil {
					return nil, err
				}
			}
		}
	}

	order.TotalAmount = orderTotal(order.Items, order.Discount)
	if order.Payment.Status == enum.PaymentStatusPartial && order.Payment.TotalPaid >= order.TotalAmount {
		order.Payment.Status = enum.PaymentStatusPaid
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(ctx, id)
}

// DeleteOrder removes an order. Deleting a completed order first restores
// the stock its items consumed.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.Status == enum.OrderStatusCompleted {
		for i := range order.Items {
			item := &order.Items[i]
			if !item.CountsTowardStock() {
				continue
			}
			if err := s.stock.RevertCompletionDeduction(ctx, *item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
	}

	return s.orderRepo.Delete(ctx, id)
}

// AddPartialPayment records an installment against an order's balance and
// promotes the payment status to paid once the balance is covered.
func (s *OrderService) AddPartialPayment(ctx context.Context, orderID uuid.UUID, amount int64, note string) (*entity.Order, error) {
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	payment := &entity.PartialPayment{
		OrderID: orderID,
		Amount:  amount,
		Note:    note,
		PaidAt:  time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	order.Payment.TotalPaid += amount
	if order.Payment.TotalPaid >= order.TotalAmount {
		order.Payment.Status = enum.PaymentStatusPaid
	} else {
		order.Payment.Status = enum.PaymentStatusPartial
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListPartialPayments returns the installment history for an order
func (s *OrderService) ListPartialPayments(ctx context.Context, orderID uuid.UUID) ([]entity.PartialPayment, error) {
	return s.paymentRepo.ListByOrderID(ctx, orderID)
}
