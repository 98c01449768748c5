package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/internal/infrastructure/repository/memory"
)

type stockFixture struct {
	products *memory.ProductRepository
	depots   *memory.DepotStockRepository
	plans    *memory.LogisticsPlanRepository
	stock    *StockService
}

func newStockFixture() *stockFixture {
	products := memory.NewProductRepository()
	depots := memory.NewDepotStockRepository()
	plans := memory.NewLogisticsPlanRepository()
	return &stockFixture{
		products: products,
		depots:   depots,
		plans:    plans,
		stock:    NewStockService(products, depots, plans),
	}
}

func (f *stockFixture) addProduct(t *testing.T, name string, quantity int) uuid.UUID {
	t.Helper()
	product := &entity.Product{Name: name, Quantity: quantity}
	if err := f.products.Create(context.Background(), product); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product.ID
}

func (f *stockFixture) setSplit(t *testing.T, productID uuid.UUID, a, b int) {
	t.Helper()
	err := f.depots.Upsert(context.Background(), &entity.DepotStock{
		ProductID:   productID,
		DepotAStock: a,
		DepotBStock: b,
	})
	if err != nil {
		t.Fatalf("upsert depot stock: %v", err)
	}
}

func (f *stockFixture) quantity(t *testing.T, productID uuid.UUID) int {
	t.Helper()
	product, err := f.products.GetByID(context.Background(), productID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if product == nil {
		t.Fatalf("product %s disappeared", productID)
	}
	return product.Quantity
}

func TestGetDepotSplit_NoRecordDefaultsToDepotA(t *testing.T) {
	f := newStockFixture()
	id := f.addProduct(t, "A4 Paper", 12)

	split, err := f.stock.GetDepotSplit(context.Background(), id)
	if err != nil {
		t.Fatalf("GetDepotSplit failed: %v", err)
	}
	if split.A != 12 || split.B != 0 {
		t.Errorf("expected split {12 0}, got {%d %d}", split.A, split.B)
	}
}

func TestGetDepotSplit_ClampsAgainstCanonical(t *testing.T) {
	f := newStockFixture()
	id := f.addProduct(t, "Banner Roll", 5)
	f.setSplit(t, id, 4, 4)

	split, err := f.stock.GetDepotSplit(context.Background(), id)
	if err != nil {
		t.Fatalf("GetDepotSplit failed: %v", err)
	}
	// B keeps as much as fits, A absorbs the difference.
	if split.B != 4 || split.A != 1 {
		t.Errorf("expected split {1 4}, got {%d %d}", split.A, split.B)
	}
	if split.Total() != 5 {
		t.Errorf("clamped split total = %d, want 5", split.Total())
	}
}

func TestGetDepotSplit_UnknownProductYieldsZero(t *testing.T) {
	f := newStockFixture()

	split, err := f.stock.GetDepotSplit(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetDepotSplit failed: %v", err)
	}
	if split.A != 0 || split.B != 0 {
		t.Errorf("expected zero split, got {%d %d}", split.A, split.B)
	}
}

func TestSetDepotSplit_OverwritesCanonicalQuantity(t *testing.T) {
	f := newStockFixture()
	id := f.addProduct(t, "Vinyl Sheet", 3)

	split, err := f.stock.SetDepotSplit(context.Background(), id, 7, 2)
	if err != nil {
		t.Fatalf("SetDepotSplit failed: %v", err)
	}
	if split.A != 7 || split.B != 2 {
		t.Errorf("expected split {7 2}, got {%d %d}", split.A, split.B)
	}
	if got := f.quantity(t, id); got != 9 {
		t.Errorf("canonical quantity = %d, want 9", got)
	}
}

func TestSetDepotSplit_NormalizesNegatives(t *testing.T) {
	f := newStockFixture()
	id := f.addProduct(t, "Ink Cartridge", 5)

	split, err := f.stock.SetDepotSplit(context.Background(), id, -3, 4)
	if err != nil {
		t.Fatalf("SetDepotSplit failed: %v", err)
	}
	if split.A != 0 || split.B != 4 {
		t.Errorf("expected split {0 4}, got {%d %d}", split.A, split.B)
	}
	if got := f.quantity(t, id); got != 4 {
		t.Errorf("canonical quantity = %d, want 4", got)
	}
}

func TestAdjustQuantity_ClampsAtZero(t *testing.T) {
	f := newStockFixture()
	id := f.addProduct(t, "Lamination Film", 2)

	if err := f.stock.AdjustQuantity(context.Background(), id, -10); err != nil {
		t.Fatalf("AdjustQuantity failed: %v", err)
	}
	if got := f.quantity(t, id); got != 0 {
		t.Errorf("quantity = %d, want 0", got)
	}
}

func TestApplyCompletionDeduction_ConsumesPlanThenFallback(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()
	id := f.addProduct(t, "Business Cards", 10)
	f.setSplit(t, id, 5, 5)
	if err := f.plans.Upsert(ctx, &entity.LogisticsPlanEntry{ProductID: id, CarryFromA: 2, CarryFromB: 3}); err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	// Planned carry covers 5 of the 7 units; the extra 2 come from depot A.
	if err := f.stock.ApplyCompletionDeduction(ctx, id, 7); err != nil {
		t.Fatalf("ApplyCompletionDeduction failed: %v", err)
	}

	if got := f.quantity(t, id); got != 3 {
		t.Errorf("quantity = %d, want 3", got)
	}
	split, err := f.stock.GetDepotSplit(ctx, id)
	if err != nil {
		t.Fatalf("GetDepotSplit failed: %v", err)
	}
	if split.A != 1 || split.B != 2 {
		t.Errorf("expected split {1 2}, got {%d %d}", split.A, split.B)
	}

	plan, err := f.plans.GetByProductID(ctx, id)
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if plan == nil || plan.CarryFromA != 0 || plan.CarryFromB != 0 {
		t.Errorf("expected plan fully consumed, got %+v", plan)
	}
}

func TestApplyCompletionDeduction_NeverGoesNegative(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()
	id := f.addProduct(t, "Flyers", 3)
	f.setSplit(t, id, 2, 1)

	if err := f.stock.ApplyCompletionDeduction(ctx, id, 50); err != nil {
		t.Fatalf("ApplyCompletionDeduction failed: %v", err)
	}

	if got := f.quantity(t, id); got != 0 {
		t.Errorf("quantity = %d, want 0", got)
	}
	split, err := f.stock.GetDepotSplit(ctx, id)
	if err != nil {
		t.Fatalf("GetDepotSplit failed: %v", err)
	}
	if split.A < 0 || split.B < 0 {
		t.Errorf("split went negative: {%d %d}", split.A, split.B)
	}
}

func TestCompletionThenReversion_RestoresStock(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()
	id := f.addProduct(t, "Posters", 10)
	f.setSplit(t, id, 6, 4)

	// No plan entry: the whole deduction comes from the fallback depot A,
	// and reversion returns it there.
	if err := f.stock.ApplyCompletionDeduction(ctx, id, 3); err != nil {
		t.Fatalf("ApplyCompletionDeduction failed: %v", err)
	}
	if err := f.stock.RevertCompletionDeduction(ctx, id, 3); err != nil {
		t.Fatalf("RevertCompletionDeduction failed: %v", err)
	}

	if got := f.quantity(t, id); got != 10 {
		t.Errorf("quantity = %d, want 10", got)
	}
	split, err := f.stock.GetDepotSplit(ctx, id)
	if err != nil {
		t.Fatalf("GetDepotSplit failed: %v", err)
	}
	if split.A != 6 || split.B != 4 {
		t.Errorf("expected split {6 4}, got {%d %d}", split.A, split.B)
	}
}

func TestRevertCompletionDeduction_RestoresToFallbackDepot(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()
	id := f.addProduct(t, "Stickers", 4)
	f.setSplit(t, id, 1, 3)

	if err := f.stock.RevertCompletionDeduction(ctx, id, 5); err != nil {
		t.Fatalf("RevertCompletionDeduction failed: %v", err)
	}

	if got := f.quantity(t, id); got != 9 {
		t.Errorf("quantity = %d, want 9", got)
	}
	split, err := f.stock.GetDepotSplit(ctx, id)
	if err != nil {
		t.Fatalf("GetDepotSplit failed: %v", err)
	}
	if split.A != 6 || split.B != 3 {
		t.Errorf("expected split {6 3}, got {%d %d}", split.A, split.B)
	}
}

func TestFallbackPolicyOverride_SendsExcessToDepotB(t *testing.T) {
	f := newStockFixture()
	ctx := context.Background()
	f.stock.WithFallbackPolicy(func(entity.Split) enum.Depot { return enum.DepotB })
	id := f.addProduct(t, "Envelopes", 10)
	f.setSplit(t, id, 5, 5)

	if err := f.stock.ApplyCompletionDeduction(ctx, id, 4); err != nil {
		t.Fatalf("ApplyCompletionDeduction failed: %v", err)
	}

	split, err := f.stock.GetDepotSplit(ctx, id)
	if err != nil {
		t.Fatalf("GetDepotSplit failed: %v", err)
	}
	if split.A != 5 || split.B != 1 {
		t.Errorf("expected split {5 1}, got {%d %d}", split.A, split.B)
	}
}
