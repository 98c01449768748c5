package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	domainRepo "github.com/mainakibe/printdesk-api/internal/domain/repository"
)

type DepotStockRepository struct {
	mu     sync.RWMutex
	stocks map[uuid.UUID]entity.DepotStock // keyed by product ID
}

// NewDepotStockRepository creates an empty in-memory depot stock repository
func NewDepotStockRepository() *DepotStockRepository {
	return &DepotStockRepository{stocks: make(map[uuid.UUID]entity.DepotStock)}
}

var _ domainRepo.DepotStockRepository = (*DepotStockRepository)(nil)

func (r *DepotStockRepository) GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.DepotStock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stock, ok := r.stocks[productID]
	if !ok {
		return nil, nil
	}
	return &stock, nil
}

func (r *DepotStockRepository) GetByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*entity.DepotStock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[uuid.UUID]*entity.DepotStock, len(productIDs))
	for _, id := range productIDs {
		if stock, ok := r.stocks[id]; ok {
			s := stock
			result[id] = &s
		}
	}
	return result, nil
}

func (r *DepotStockRepository) Upsert(ctx context.Context, stock *entity.DepotStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.stocks[stock.ProductID]; ok {
		stock.ID = existing.ID
		stock.CreatedAt = existing.CreatedAt
	} else {
		if stock.ID == uuid.Nil {
			stock.ID = uuid.New()
		}
		stock.CreatedAt = time.Now()
	}
	stock.LastUpdated = time.Now()
	stock.UpdatedAt = stock.LastUpdated
	r.stocks[stock.ProductID] = *stock
	return nil
}

type LogisticsPlanRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]entity.LogisticsPlanEntry // keyed by product ID
}

// NewLogisticsPlanRepository creates an empty in-memory logistics plan repository
func NewLogisticsPlanRepository() *LogisticsPlanRepository {
	return &LogisticsPlanRepository{entries: make(map[uuid.UUID]entity.LogisticsPlanEntry)}
}

var _ domainRepo.LogisticsPlanRepository = (*LogisticsPlanRepository)(nil)

func (r *LogisticsPlanRepository) GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.LogisticsPlanEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[productID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (r *LogisticsPlanRepository) GetAll(ctx context.Context) (map[uuid.UUID]*entity.LogisticsPlanEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[uuid.UUID]*entity.LogisticsPlanEntry, len(r.entries))
	for id, entry := range r.entries {
		e := entry
		result[id] = &e
	}
	return result, nil
}

func (r *LogisticsPlanRepository) Upsert(ctx context.Context, entry *entity.LogisticsPlanEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.entries[entry.ProductID]; ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	} else {
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}
		entry.CreatedAt = time.Now()
	}
	entry.UpdatedAt = time.Now()
	r.entries[entry.ProductID] = *entry
	return nil
}

func (r *LogisticsPlanRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[uuid.UUID]entity.LogisticsPlanEntry)
	return nil
}
