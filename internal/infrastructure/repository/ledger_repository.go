package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	domainRepo "github.com/mainakibe/printdesk-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type manualNeedRepository struct {
	db *gorm.DB
}

// NewManualNeedRepository creates a new manual need repository
func NewManualNeedRepository(db *gorm.DB) domainRepo.ManualNeedRepository {
	return &manualNeedRepository{db: db}
}

func (r *manualNeedRepository) GetByProductID(ctx context.Context, productID uuid.UUID) (*entity.ManualNeed, error) {
	var need entity.ManualNeed
	err := r.db.WithContext(ctx).First(&need, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &need, err
}

func (r *manualNeedRepository) Create(ctx context.Context, need *entity.ManualNeed) error {
	return r.db.WithContext(ctx).Create(need).Error
}

func (r *manualNeedRepository) Update(ctx context.Context, need *entity.ManualNeed) error {
	return r.db.WithContext(ctx).Save(need).Error
}

func (r *manualNeedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ManualNeed{}, "id = ?", id).Error
}

func (r *manualNeedRepository) List(ctx context.Context) ([]entity.ManualNeed, error) {
	var needs []entity.ManualNeed
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&needs).Error
	return needs, err
}

type unpaidWritingRepository struct {
	db *gorm.DB
}

// NewUnpaidWritingRepository creates a new unpaid writing repository
func NewUnpaidWritingRepository(db *gorm.DB) domainRepo.UnpaidWritingRepository {
	return &unpaidWritingRepository{db: db}
}

func (r *unpaidWritingRepository) Create(ctx context.Context, writing *entity.UnpaidWriting) error {
	return r.db.WithContext(ctx).Create(writing).Error
}

func (r *unpaidWritingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.UnpaidWriting, error) {
	var writing entity.UnpaidWriting
	err := r.db.WithContext(ctx).First(&writing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &writing, err
}

func (r *unpaidWritingRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.UnpaidWriting, error) {
	var writing entity.UnpaidWriting
	err := r.db.WithContext(ctx).First(&writing, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &writing, err
}

func (r *unpaidWritingRepository) Update(ctx context.Context, writing *entity.UnpaidWriting) error {
	return r.db.WithContext(ctx).Save(writing).Error
}

func (r *unpaidWritingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.UnpaidWriting{}, "id = ?", id).Error
}

func (r *unpaidWritingRepository) List(ctx context.Context) ([]entity.UnpaidWriting, error) {
	var writings []entity.UnpaidWriting
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&writings).Error
	return writings, err
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new scratch note repository
func NewNoteRepository(db *gorm.DB) domainRepo.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Get(ctx context.Context, key string) (*entity.ShopNote, error) {
	var note entity.ShopNote
	err := r.db.WithContext(ctx).First(&note, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &note, err
}

func (r *noteRepository) Set(ctx context.Context, note *entity.ShopNote) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(note).Error
}
