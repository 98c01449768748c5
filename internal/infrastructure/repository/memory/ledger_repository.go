package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	domainRepo "github.com/mainakibe/printdesk-api/internal/domain/repository"
)

type ManualNeedRepository struct {
	mu    sync.RWMutex
	needs map[uuid.UUID]entity.ManualNeed
}

// NewManualNeedRepository creates an empty in-memory manual need repository
func NewManualNeedRepository() *ManualNeedRepository {
	return &ManualNeedRepository{needs: make(map[uuid.UUID]entity.ManualNeed)}
}

var _ domainRepo.ManualNeedRepository = (*ManualNeedRepository)(nil)

func (r *ManualNeedRepository) GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.ManualNeed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.needs {
		if n.ProductID == productID {
			return &n, nil
		}
	}
	return nil, nil
}

func (r *ManualNeedRepository) Create(ctx context.Context, need *entity.ManualNeed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if need.ID == uuid.Nil {
		need.ID = uuid.New()
	}
	need.CreatedAt = time.Now()
	need.UpdatedAt = need.CreatedAt
	r.needs[need.ID] = *need
	return nil
}

func (r *ManualNeedRepository) Update(ctx context.Context, need *entity.ManualNeed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	need.UpdatedAt = time.Now()
	r.needs[need.ID] = *need
	return nil
}

func (r *ManualNeedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.needs, id)
	return nil
}

func (r *ManualNeedRepository) List(ctx context.Context) ([]entity.ManualNeed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]entity.ManualNeed, 0, len(r.needs))
	for _, n := range r.needs {
		result = append(result, n)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type UnpaidWritingRepository struct {
	mu       sync.RWMutex
	writings map[uuid.UUID]entity.UnpaidWriting
}

// NewUnpaidWritingRepository creates an empty in-memory unpaid writing repository
func NewUnpaidWritingRepository() *UnpaidWritingRepository {
	return &UnpaidWritingRepository{writings: make(map[uuid.UUID]entity.UnpaidWriting)}
}

var _ domainRepo.UnpaidWritingRepository = (*UnpaidWritingRepository)(nil)

func (r *UnpaidWritingRepository) Create(ctx context.Context, writing *entity.UnpaidWriting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if writing.ID == uuid.Nil {
		writing.ID = uuid.New()
	}
	writing.CreatedAt = time.Now()
	r.writings[writing.ID] = *writing
	return nil
}

func (r *UnpaidWritingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.UnpaidWriting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	writing, ok := r.writings[id]
	if !ok {
		return nil, nil
	}
	return &writing, nil
}

func (r *UnpaidWritingRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.UnpaidWriting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.writings {
		if w.OrderID != nil && *w.OrderID == orderID {
			return &w, nil
		}
	}
	return nil, nil
}

func (r *UnpaidWritingRepository) Update(ctx context.Context, writing *entity.UnpaidWriting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	writing.UpdatedAt = time.Now()
	r.writings[writing.ID] = *writing
	return nil
}

func (r *UnpaidWritingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.writings, id)
	return nil
}

func (r *UnpaidWritingRepository) List(ctx context.Context) ([]entity.UnpaidWriting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]entity.UnpaidWriting, 0, len(r.writings))
	for _, w := range r.writings {
		result = append(result, w)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type NoteRepository struct {
	mu    sync.RWMutex
	notes map[string]entity.ShopNote
}

// NewNoteRepository creates an empty in-memory scratch note repository
func NewNoteRepository() *NoteRepository {
	return &NoteRepository{notes: make(map[string]entity.ShopNote)}
}

var _ domainRepo.NoteRepository = (*NoteRepository)(nil)

func (r *NoteRepository) Get(ctx context.Context, key string) (*entity.ShopNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	note, ok := r.notes[key]
	if !ok {
		return nil, nil
	}
	return &note, nil
}

func (r *NoteRepository) Set(ctx context.Context, note *entity.ShopNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.UpdatedAt = time.Now()
	r.notes[note.Key] = *note
	return nil
}

type IdempotencyRepository struct {
	mu   sync.RWMutex
	keys map[string]entity.IdempotencyKey
}

// NewIdempotencyRepository creates an empty in-memory idempotency repository
func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{keys: make(map[string]entity.IdempotencyKey)}
}

var _ domainRepo.IdempotencyRepository = (*IdempotencyRepository)(nil)

func (r *IdempotencyRepository) GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ikey, ok := r.keys[key]
	if !ok {
		return nil, nil
	}
	return &ikey, nil
}

func (r *IdempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}
	ikey.CreatedAt = time.Now()
	r.keys[ikey.Key] = *ikey
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, ikey := range r.keys {
		if ikey.IsExpired() {
			delete(r.keys, key)
		}
	}
	return nil
}
