package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	domainRepo "github.com/mainakibe/printdesk-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type depotStockRepository struct {
	db *gorm.DB
}

// NewDepotStockRepository creates a new depot stock repository
func NewDepotStockRepository(db *gorm.DB) domainRepo.DepotStockRepository {
	return &depotStockRepository{db: db}
}

func (r *depotStockRepository) GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.DepotStock, error) {
	var stock entity.DepotStock
	err := r.db.WithContext(ctx).First(&stock, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stock, err
}

func (r *depotStockRepository) GetByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*entity.DepotStock, error) {
	result := make(map[uuid.UUID]*entity.DepotStock, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	var stocks []entity.DepotStock
	err := r.db.WithContext(ctx).Where("product_id IN ?", productIDs).Find(&stocks).Error
	if err != nil {
		return nil, err
	}
	for i := range stocks {
		result[stocks[i].ProductID] = &stocks[i]
	}
	return result, nil
}

func (r *depotStockRepository) Upsert(ctx context.Context, stock *entity.DepotStock) error {
	stock.LastUpdated = time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"depot_a_stock", "depot_b_stock", "last_updated", "updated_at"}),
	}).Create(stock).Error
}

type logisticsPlanRepository struct {
	db *gorm.DB
}

// NewLogisticsPlanRepository creates a new logistics plan repository
func NewLogisticsPlanRepository(db *gorm.DB) domainRepo.LogisticsPlanRepository {
	return &logisticsPlanRepository{db: db}
}

func (r *logisticsPlanRepository) GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.LogisticsPlanEntry, error) {
	var entry entity.LogisticsPlanEntry
	err := r.db.WithContext(ctx).First(&entry, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *logisticsPlanRepository) GetAll(ctx context.Context) (map[uuid.UUID]*entity.LogisticsPlanEntry, error) {
	var entries []entity.LogisticsPlanEntry
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	result := make(map[uuid.UUID]*entity.LogisticsPlanEntry, len(entries))
	for i := range entries {
		result[entries[i].ProductID] = &entries[i]
	}
	return result, nil
}

func (r *logisticsPlanRepository) Upsert(ctx context.Context, entry *entity.LogisticsPlanEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"carry_from_a", "carry_from_b", "updated_at"}),
	}).Create(entry).Error
}

func (r *logisticsPlanRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Unscoped().
		Delete(&entity.LogisticsPlanEntry{}).Error
}
