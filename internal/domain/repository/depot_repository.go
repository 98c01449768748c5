package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
)

// DepotStockRepository defines the interface for depot split records.
// A nil result from the getters means the product has no record yet.
type DepotStockRepository interface {
	GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.DepotStock, error)
	GetByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*entity.DepotStock, error)
	Upsert(ctx context.Context, stock *entity.DepotStock) error
}

// LogisticsPlanRepository defines the interface for carry-plan entries.
type LogisticsPlanRepository interface {
	GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.LogisticsPlanEntry, error)
	GetAll(ctx context.Context) (map[uuid.UUID]*entity.LogisticsPlanEntry, error)
	Upsert(ctx context.Context, entry *entity.LogisticsPlanEntry) error
	// DeleteAll wipes the plan; only the explicit reset action uses this.
	DeleteAll(ctx context.Context) error
}
