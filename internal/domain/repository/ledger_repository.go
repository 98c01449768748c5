package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
)

// ManualNeedRepository defines the interface for manual purchasing needs
type ManualNeedRepository interface {
	GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.ManualNeed, error)
	Create(ctx context.Context, need *entity.ManualNeed) error
	Update(ctx context.Context, need *entity.ManualNeed) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.ManualNeed, error)
}

// UnpaidWritingRepository defines the interface for credit-book entries
type UnpaidWritingRepository interface {
	Create(ctx context.Context, writing *entity.UnpaidWriting) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UnpaidWriting, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.UnpaidWriting, error)
	Update(ctx context.Context, writing *entity.UnpaidWriting) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.UnpaidWriting, error)
}

// NoteRepository defines the interface for the scratch note store
type NoteRepository interface {
	Get(ctx context.Context, key string) (*entity.ShopNote, error)
	Set(ctx context.Context, note *entity.ShopNote) error
}
