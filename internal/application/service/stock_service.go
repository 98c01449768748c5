package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
)

// FallbackDepotPolicy decides which depot absorbs unplanned deductions at
// completion time and receives restored units on reversion. The shop treats
// depot A (the main floor) as authoritative, but the choice is a policy, not
// a law of physics, so it stays swappable.
type FallbackDepotPolicy func(split entity.Split) enum.Depot

// FallbackToDepotA is the default policy: depot A absorbs every adjustment.
func FallbackToDepotA(entity.Split) enum.Depot {
	return enum.DepotA
}

// StockService keeps the canonical product quantities and the per-depot
// splits consistent. Every operation re-reads persisted state before
// mutating, so a multi-item completion cannot clobber itself.
type StockService struct {
	productRepo repository.ProductRepository
	depotRepo   repository.DepotStockRepository
	planRepo    repository.LogisticsPlanRepository
	fallback    FallbackDepotPolicy
}

// NewStockService creates a new stock service with the default
// depot-A fallback policy.
func NewStockService(
	productRepo repository.ProductRepository,
	depotRepo repository.DepotStockRepository,
	planRepo repository.LogisticsPlanRepository,
) *StockService {
	return &StockService{
		productRepo: productRepo,
		depotRepo:   depotRepo,
		planRepo:    planRepo,
		fallback:    FallbackToDepotA,
	}
}

// WithFallbackPolicy overrides the unplanned-excess depot policy.
func (s *StockService) WithFallbackPolicy(policy FallbackDepotPolicy) *StockService {
	if policy != nil {
		s.fallback = policy
	}
	return s
}

// GetDepotSplit returns the clamped depot split for a product. A product
// without a depot record has everything in depot A; an unknown product
// yields a zero split rather than an error.
func (s *StockService) GetDepotSplit(ctx context.Context, productID uuid.UUID) (entity.Split, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return entity.Split{}, err
	}
	canonical := 0
	if product != nil {
		canonical = product.Quantity
	}

	record, err := s.depotRepo.GetByProductID(ctx, productID)
	if err != nil {
		return entity.Split{}, err
	}
	if record == nil {
		return entity.Split{A: canonical, B: 0}, nil
	}
	return entity.Split{A: record.DepotAStock, B: record.DepotBStock}.Clamp(canonical), nil
}

// SetDepotSplit stores an operator-entered split and overwrites the
// canonical quantity with its sum. Explicit depot edits are authoritative
// for the total. Negative inputs are normalized to zero.
func (s *StockService) SetDepotSplit(ctx context.Context, productID uuid.UUID, a, b int) (entity.Split, error) {
	if a < 0 {
		a = 0
	}
	if b < 0 {
		b = 0
	}

	if err := s.depotRepo.Upsert(ctx, &entity.DepotStock{
		ProductID:   productID,
		DepotAStock: a,
		DepotBStock: b,
	}); err != nil {
		return entity.Split{}, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return entity.Split{}, err
	}
	if product != nil {
		if err := s.productRepo.UpdateQuantity(ctx, productID, a+b); err != nil {
			return entity.Split{}, err
		}
	}

	return entity.Split{A: a, B: b}, nil
}

// AdjustQuantity shifts the canonical quantity by delta, clamped at zero.
// The depot split is reconciled lazily by the Clamp read path.
func (s *StockService) AdjustQuantity(ctx context.Context, productID uuid.UUID, delta int) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}
	next := product.Quantity + delta
	if next < 0 {
		next = 0
	}
	return s.productRepo.UpdateQuantity(ctx, productID, next)
}

// ApplyCompletionDeduction removes qty units of a product when an order
// completes. The canonical quantity drops first (clamped at zero); the depot
// split is then consumed through the logistics plan, depot A up to its
// planned carry and depot B up to its planned carry, decrementing the plan's
// remaining carry as it is used. Any unplanned excess comes out of the
// fallback depot.
func (s *StockService) ApplyCompletionDeduction(ctx context.Context, productID uuid.UUID, qty int) error {
	if qty <= 0 {
		return nil
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	canonical := 0
	if product != nil {
		canonical = product.Quantity
		next := canonical - qty
		if next < 0 {
			next = 0
		}
		if err := s.productRepo.UpdateQuantity(ctx, productID, next); err != nil {
			return err
		}
	}

	// Split is clamped against the pre-deduction canonical quantity: that
	// is where the physical units actually were.
	record, err := s.depotRepo.GetByProductID(ctx, productID)
	if err != nil {
		return err
	}
	split := entity.Split{A: canonical, B: 0}
	if record != nil {
		split = entity.Split{A: record.DepotAStock, B: record.DepotBStock}.Clamp(canonical)
	}

	plan, err := s.planRepo.GetByProductID(ctx, productID)
	if err != nil {
		return err
	}

	remaining := qty
	useA, useB := 0, 0
	if plan != nil {
		useA = minInt(remaining, plan.CarryFromA)
		split.A = maxInt(0, split.A-useA)
		remaining -= useA

		useB = minInt(remaining, plan.CarryFromB)
		split.B = maxInt(0, split.B-useB)
		remaining -= useB
	}

	if remaining > 0 {
		switch s.fallback(split) {
		case enum.DepotB:
			split.B = maxInt(0, split.B-remaining)
		default:
			split.A = maxInt(0, split.A-remaining)
		}
	}

	if err := s.depotRepo.Upsert(ctx, &entity.DepotStock{
		ProductID:   productID,
		DepotAStock: split.A,
		DepotBStock: split.B,
	}); err != nil {
		return err
	}

	if plan != nil && (useA > 0 || useB > 0) {
		plan.CarryFromA -= useA
		plan.CarryFromB -= useB
		if err := s.planRepo.Upsert(ctx, plan); err != nil {
			return err
		}
	}

	return nil
}

// RevertCompletionDeduction puts qty units of a product back after an order
// leaves the completed state (or a completed order is deleted). Units return
// to the canonical quantity and to the fallback depot; the system does not
// guess which depot they originally left from.
func (s *StockService) RevertCompletionDeduction(ctx context.Context, productID uuid.UUID, qty int) error {
	if qty <= 0 {
		return nil
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	canonical := 0
	if product != nil {
		canonical = product.Quantity
		if err := s.productRepo.UpdateQuantity(ctx, productID, canonical+qty); err != nil {
			return err
		}
	}

	record, err := s.depotRepo.GetByProductID(ctx, productID)
	if err != nil {
		return err
	}
	split := entity.Split{A: canonical, B: 0}
	if record != nil {
		split = entity.Split{A: record.DepotAStock, B: record.DepotBStock}.Clamp(canonical)
	}

	switch s.fallback(split) {
	case enum.DepotB:
		split.B += qty
	default:
		split.A += qty
	}

	return s.depotRepo.Upsert(ctx, &entity.DepotStock{
		ProductID:   productID,
		DepotAStock: split.A,
		DepotBStock: split.B,
	})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
