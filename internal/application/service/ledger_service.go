package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/pkg/apperror"
)

// LedgerService covers the shop's paper ledgers: manual purchasing needs,
// the unpaid credit book, and the two scratch notes.
type LedgerService struct {
	needRepo     repository.ManualNeedRepository
	writingRepo  repository.UnpaidWritingRepository
	noteRepo     repository.NoteRepository
	orderRepo    repository.OrderRepository
	categoryRepo repository.CategoryRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	needRepo repository.ManualNeedRepository,
	writingRepo repository.UnpaidWritingRepository,
	noteRepo repository.NoteRepository,
	orderRepo repository.OrderRepository,
	categoryRepo repository.CategoryRepository,
) *LedgerService {
	return &LedgerService{
		needRepo:     needRepo,
		writingRepo:  writingRepo,
		noteRepo:     noteRepo,
		orderRepo:    orderRepo,
		categoryRepo: categoryRepo,
	}
}

// SetManualNeed records an operator-entered purchasing need for a product.
// One entry per product: a second submission overwrites the first but keeps
// its identity, so external references stay valid.
func (s *LedgerService) SetManualNeed(ctx context.Context, productID uuid.UUID, totalRequired int, note string) (*entity.ManualNeed, error) {
	if totalRequired < 0 {
		totalRequired = 0
	}

	existing, err := s.needRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.TotalRequired = totalRequired
		existing.Note = note
		if err := s.needRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	need := &entity.ManualNeed{
		ProductID:     productID,
		TotalRequired: totalRequired,
		Note:          note,
	}
	if err := s.needRepo.Create(ctx, need); err != nil {
		return nil, err
	}
	return need, nil
}

// DeleteManualNeed removes a purchasing need entry
func (s *LedgerService) DeleteManualNeed(ctx context.Context, id uuid.UUID) error {
	return s.needRepo.Delete(ctx, id)
}

// ListManualNeeds returns every purchasing need entry
func (s *LedgerService) ListManualNeeds(ctx context.Context) ([]entity.ManualNeed, error) {
	return s.needRepo.List(ctx)
}

// CreateUnpaidWritingInput represents a manual credit-book entry
type CreateUnpaidWritingInput struct {
	Title        string
	CustomerName string
	Amount       int64
}

// CreateUnpaidWriting records a manual entry in the credit book
func (s *LedgerService) CreateUnpaidWriting(ctx context.Context, input *CreateUnpaidWritingInput) (*entity.UnpaidWriting, error) {
	if input.Title == "" {
		return nil, apperror.NewBadRequestError("Title is required")
	}
	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}

	writing := &entity.UnpaidWriting{
		Title:        input.Title,
		CustomerName: input.CustomerName,
		Amount:       input.Amount,
	}
	if err := s.writingRepo.Create(ctx, writing); err != nil {
		return nil, err
	}
	return writing, nil
}

// UpdateUnpaidWritingInput represents the update input for a credit-book entry
type UpdateUnpaidWritingInput struct {
	Title        *string
	CustomerName *string
	Amount       *int64
}

// UpdateUnpaidWriting updates a credit-book entry
func (s *LedgerService) UpdateUnpaidWriting(ctx context.Context, id uuid.UUID, input *UpdateUnpaidWritingInput) (*entity.UnpaidWriting, error) {
	writing, err := s.writingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if writing == nil {
		return nil, apperror.NewNotFoundError("Unpaid writing")
	}

	if input.Title != nil {
		writing.Title = *input.Title
	}
	if input.CustomerName != nil {
		writing.CustomerName = *input.CustomerName
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, apperror.NewBadRequestError("Amount cannot be negative")
		}
		writing.Amount = *input.Amount
	}

	if err := s.writingRepo.Update(ctx, writing); err != nil {
		return nil, err
	}
	return writing, nil
}

// DeleteUnpaidWriting removes a credit-book entry
func (s *LedgerService) DeleteUnpaidWriting(ctx context.Context, id uuid.UUID) error {
	writing, err := s.writingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if writing == nil {
		return apperror.NewNotFoundError("Unpaid writing")
	}
	return s.writingRepo.Delete(ctx, id)
}

// ListUnpaidWritings returns the full credit book
func (s *LedgerService) ListUnpaidWritings(ctx context.Context) ([]entity.UnpaidWriting, error) {
	return s.writingRepo.List(ctx)
}

// AssignOrderCategory files an order under a category. Filing under the
// built-in unpaid category also writes the order into the credit book, at
// most once per order.
func (s *LedgerService) AssignOrderCategory(ctx context.Context, orderID uuid.UUID, categoryID *uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	order.CategoryID = categoryID
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if categoryID == nil {
		return order, nil
	}

	category, err := s.categoryRepo.GetByID(ctx, *categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.Slug != entity.UnpaidCategorySlug {
		return order, nil
	}

	existing, err := s.writingRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return order, nil
	}

	writing := &entity.UnpaidWriting{
		OrderID:      &orderID,
		Title:        "Order for " + order.CustomerName,
		CustomerName: order.CustomerName,
		Amount:       order.TotalAmount,
	}
	if err := s.writingRepo.Create(ctx, writing); err != nil {
		return nil, err
	}
	return order, nil
}

// GetNote reads one of the scratch notes. A note that was never written
// comes back empty rather than missing.
func (s *LedgerService) GetNote(ctx context.Context, key string) (*entity.ShopNote, error) {
	if !validNoteKey(key) {
		return nil, apperror.NewNotFoundError("Note")
	}
	note, err := s.noteRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return &entity.ShopNote{Key: key}, nil
	}
	return note, nil
}

// SetNote overwrites one of the scratch notes
func (s *LedgerService) SetNote(ctx context.Context, key, body string) (*entity.ShopNote, error) {
	if !validNoteKey(key) {
		return nil, apperror.NewNotFoundError("Note")
	}
	note := &entity.ShopNote{Key: key, Body: body, UpdatedAt: time.Now()}
	if err := s.noteRepo.Set(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func validNoteKey(key string) bool {
	return key == entity.NoteKeyGeneral || key == entity.NoteKeyNeedsPriority
}
