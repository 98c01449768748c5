package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/internal/infrastructure/repository/memory"
)

type requirementFixture struct {
	products *memory.ProductRepository
	orders   *memory.OrderRepository
	depots   *memory.DepotStockRepository
	plans    *memory.LogisticsPlanRepository
	service  *RequirementService
}

func newRequirementFixture() *requirementFixture {
	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository()
	depots := memory.NewDepotStockRepository()
	plans := memory.NewLogisticsPlanRepository()
	return &requirementFixture{
		products: products,
		orders:   orders,
		depots:   depots,
		plans:    plans,
		service:  NewRequirementService(orders, products, depots, plans),
	}
}

func (f *requirementFixture) addProduct(t *testing.T, name string, quantity int) uuid.UUID {
	t.Helper()
	product := &entity.Product{Name: name, Quantity: quantity}
	if err := f.products.Create(context.Background(), product); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product.ID
}

func (f *requirementFixture) addOrder(t *testing.T, status enum.OrderStatus, items ...entity.OrderItem) uuid.UUID {
	t.Helper()
	order := &entity.Order{
		CustomerName: "Walk-in",
		OrderDate:    time.Now(),
		Status:       status,
		Items:        items,
	}
	if err := f.orders.Create(context.Background(), order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order.ID
}

func catalogItem(productID uuid.UUID, name string, qty int) entity.OrderItem {
	return entity.OrderItem{ProductID: &productID, ProductName: name, Quantity: qty}
}

func (f *requirementFixture) line(t *testing.T, report *RequirementReport, productID uuid.UUID) RequirementLine {
	t.Helper()
	for _, line := range report.Lines {
		if line.ProductID == productID {
			return line
		}
	}
	t.Fatalf("no requirement line for product %s", productID)
	return RequirementLine{}
}

func TestAggregateDemand_PendingCatalogItemsOnly(t *testing.T) {
	pid := uuid.New()
	other := uuid.New()
	orders := []entity.Order{
		{
			Status: enum.OrderStatusPending,
			Items: []entity.OrderItem{
				{ProductID: &pid, Quantity: 3},
				{ProductID: &pid, Quantity: 2},
				{ProductName: "Custom banner", Quantity: 10, IsCustom: true},
				{ProductID: &other, Quantity: 0},
			},
		},
		{
			Status: enum.OrderStatusCompleted,
			Items:  []entity.OrderItem{{ProductID: &pid, Quantity: 100}},
		},
	}

	demand := AggregateDemand(orders)
	if len(demand) != 1 {
		t.Fatalf("expected demand for exactly 1 product, got %d", len(demand))
	}
	if demand[pid] != 5 {
		t.Errorf("demand = %d, want 5", demand[pid])
	}
}

func TestMergePlans_ExistingEntriesWin(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()
	existing := map[uuid.UUID]*entity.LogisticsPlanEntry{
		id1: {ProductID: id1, CarryFromA: 9},
	}
	computed := map[uuid.UUID]*entity.LogisticsPlanEntry{
		id1: {ProductID: id1, CarryFromA: 1},
		id2: {ProductID: id2, CarryFromB: 4},
	}

	merged := MergePlans(existing, computed)
	if merged[id1].CarryFromA != 9 {
		t.Errorf("existing entry overwritten: carry_from_a = %d, want 9", merged[id1].CarryFromA)
	}
	if merged[id2].CarryFromB != 4 {
		t.Errorf("computed gap not filled: carry_from_b = %d, want 4", merged[id2].CarryFromB)
	}
}

func TestComputeRequirements_ShortageArithmetic(t *testing.T) {
	f := newRequirementFixture()
	ctx := context.Background()
	covered := f.addProduct(t, "A4 Paper", 10)
	short := f.addProduct(t, "Photo Paper", 3)
	f.addOrder(t, enum.OrderStatusPending,
		catalogItem(covered, "A4 Paper", 4),
		catalogItem(short, "Photo Paper", 5),
	)

	report, err := f.service.ComputeRequirements(ctx)
	if err != nil {
		t.Fatalf("ComputeRequirements failed: %v", err)
	}

	coveredLine := f.line(t, report, covered)
	if coveredLine.Needed != 0 {
		t.Errorf("covered product needed = %d, want 0", coveredLine.Needed)
	}
	// Everything sits in depot A by default, so the plan carries from A.
	if coveredLine.CarryFromA != 4 || coveredLine.CarryFromB != 0 {
		t.Errorf("covered plan = {%d %d}, want {4 0}", coveredLine.CarryFromA, coveredLine.CarryFromB)
	}

	shortLine := f.line(t, report, short)
	if shortLine.Needed != 2 {
		t.Errorf("short product needed = %d, want 2", shortLine.Needed)
	}
	// A shortage defers the carry decision to the operator.
	if shortLine.CarryFromA != 0 || shortLine.CarryFromB != 0 {
		t.Errorf("short plan = {%d %d}, want {0 0}", shortLine.CarryFromA, shortLine.CarryFromB)
	}
}

func TestComputeRequirements_DefaultPlanDrawsDepotAFirst(t *testing.T) {
	f := newRequirementFixture()
	ctx := context.Background()
	pid := f.addProduct(t, "Glossy Paper", 5)
	if err := f.depots.Upsert(ctx, &entity.DepotStock{ProductID: pid, DepotAStock: 2, DepotBStock: 3}); err != nil {
		t.Fatalf("seed depot: %v", err)
	}
	f.addOrder(t, enum.OrderStatusPending, catalogItem(pid, "Glossy Paper", 5))

	report, err := f.service.ComputeRequirements(ctx)
	if err != nil {
		t.Fatalf("ComputeRequirements failed: %v", err)
	}

	line := f.line(t, report, pid)
	if line.CarryFromA != 2 || line.CarryFromB != 3 {
		t.Errorf("plan = {%d %d}, want {2 3}", line.CarryFromA, line.CarryFromB)
	}
	if len(report.PickupFromA) != 1 || report.PickupFromA[0].Units != 2 {
		t.Errorf("pickup from A = %+v, want one stop with 2 units", report.PickupFromA)
	}
	if len(report.PickupFromB) != 1 || report.PickupFromB[0].Units != 3 {
		t.Errorf("pickup from B = %+v, want one stop with 3 units", report.PickupFromB)
	}
}

func TestComputeRequirements_ReportCarriesConfiguredDepotNames(t *testing.T) {
	f := newRequirementFixture()
	ctx := context.Background()
	f.service.WithDepotNames("Shop", "Godown")

	report, err := f.service.ComputeRequirements(ctx)
	if err != nil {
		t.Fatalf("ComputeRequirements failed: %v", err)
	}
	if report.DepotAName != "Shop" || report.DepotBName != "Godown" {
		t.Errorf("depot names = %q/%q, want Shop/Godown", report.DepotAName, report.DepotBName)
	}

	// Blank overrides keep the defaults.
	g := newRequirementFixture()
	g.service.WithDepotNames("", "")
	report, err = g.service.ComputeRequirements(ctx)
	if err != nil {
		t.Fatalf("ComputeRequirements failed: %v", err)
	}
	if report.DepotAName != "Depot A" || report.DepotBName != "Depot B" {
		t.Errorf("depot names = %q/%q, want defaults", report.DepotAName, report.DepotBName)
	}
}

func TestComputeRequirements_OperatorOverridesSurviveRecompute(t *testing.T) {
	f := newRequirementFixture()
	ctx := context.Background()
	pid := f.addProduct(t, "Card Stock", 10)
	f.addOrder(t, enum.OrderStatusPending, catalogItem(pid, "Card Stock", 4))

	if _, err := f.service.ComputeRequirements(ctx); err != nil {
		t.Fatalf("first compute failed: %v", err)
	}
	if _, err := f.service.UpdateLogisticsEntry(ctx, pid, PlanFieldCarryFromA, 9); err != nil {
		t.Fatalf("UpdateLogisticsEntry failed: %v", err)
	}

	report, err := f.service.ComputeRequirements(ctx)
	if err != nil {
		t.Fatalf("second compute failed: %v", err)
	}
	line := f.line(t, report, pid)
	if line.CarryFromA != 9 {
		t.Errorf("override lost on recompute: carry_from_a = %d, want 9", line.CarryFromA)
	}
}

func TestComputeRequirements_MissingProductDegradesToZeroStock(t *testing.T) {
	f := newRequirementFixture()
	ctx := context.Background()
	ghost := uuid.New()
	f.addOrder(t, enum.OrderStatusPending, catalogItem(ghost, "Discontinued Stock", 6))

	report, err := f.service.ComputeRequirements(ctx)
	if err != nil {
		t.Fatalf("ComputeRequirements failed: %v", err)
	}

	line := f.line(t, report, ghost)
	if line.Name != "Discontinued Stock" {
		t.Errorf("line name = %q, want item snapshot name", line.Name)
	}
	if line.CurrentStock != 0 || line.Needed != 6 {
		t.Errorf("stock = %d needed = %d, want 0 and 6", line.CurrentStock, line.Needed)
	}
}

func TestUpdateLogisticsEntry_NormalizesAndValidates(t *testing.T) {
	f := newRequirementFixture()
	ctx := context.Background()
	pid := uuid.New()

	entry, err := f.service.UpdateLogisticsEntry(ctx, pid, PlanFieldCarryFromB, -5)
	if err != nil {
		t.Fatalf("UpdateLogisticsEntry failed: %v", err)
	}
	if entry.CarryFromB != 0 {
		t.Errorf("carry_from_b = %d, want 0", entry.CarryFromB)
	}

	if _, err := f.service.UpdateLogisticsEntry(ctx, pid, "carry_from_c", 1); err == nil {
		t.Error("expected an error for an unknown plan field")
	}
}

func TestResetLogisticsPlan_DiscardsOverrides(t *testing.T) {
	f := newRequirementFixture()
	ctx := context.Background()
	pid := f.addProduct(t, "Letterheads", 10)
	f.addOrder(t, enum.OrderStatusPending, catalogItem(pid, "Letterheads", 4))

	if _, err := f.service.UpdateLogisticsEntry(ctx, pid, PlanFieldCarryFromA, 9); err != nil {
		t.Fatalf("UpdateLogisticsEntry failed: %v", err)
	}

	report, err := f.service.ResetLogisticsPlan(ctx)
	if err != nil {
		t.Fatalf("ResetLogisticsPlan failed: %v", err)
	}
	line := f.line(t, report, pid)
	if line.CarryFromA != 4 || line.CarryFromB != 0 {
		t.Errorf("plan after reset = {%d %d}, want default {4 0}", line.CarryFromA, line.CarryFromB)
	}
}
