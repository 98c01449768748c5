package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	domainRepo "github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/pkg/pagination"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Category").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Omit("Items", "Category").Save(order).Error
}

func (r *orderRepository) ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.OrderItem{}, "order_id = ?", orderID).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.Nil
			items[i].OrderID = orderID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, "id = ?", id).Error
	})
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Search != "" {
		query = query.Where("customer_name ILIKE ? OR customer_phone ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("order_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("order_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := pagination.SortColumn(params.SortBy, "created_at",
		"customer_name", "order_date", "total_amount", "status", "created_at", "updated_at")
	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Preload("Items").Preload("Category").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) ListByStatus(ctx context.Context, status enum.OrderStatus) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Preload("Items").
		Find(&orders).Error
	return orders, err
}

type partialPaymentRepository struct {
	db *gorm.DB
}

// NewPartialPaymentRepository creates a new partial payment repository
func NewPartialPaymentRepository(db *gorm.DB) domainRepo.PartialPaymentRepository {
	return &partialPaymentRepository{db: db}
}

func (r *partialPaymentRepository) Create(ctx context.Context, payment *entity.PartialPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *partialPaymentRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.PartialPayment, error) {
	var payments []entity.PartialPayment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *partialPaymentRepository) SumByOrderID(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&entity.PartialPayment{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
