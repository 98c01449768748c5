package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/internal/infrastructure/repository/memory"
)

type orderFixture struct {
	products *memory.ProductRepository
	orders   *memory.OrderRepository
	payments *memory.PartialPaymentRepository
	depots   *memory.DepotStockRepository
	plans    *memory.LogisticsPlanRepository
	stock    *StockService
	service  *OrderService
}

func newOrderFixture() *orderFixture {
	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository()
	payments := memory.NewPartialPaymentRepository()
	depots := memory.NewDepotStockRepository()
	plans := memory.NewLogisticsPlanRepository()
	stock := NewStockService(products, depots, plans)
	return &orderFixture{
		products: products,
		orders:   orders,
		payments: payments,
		depots:   depots,
		plans:    plans,
		stock:    stock,
		service:  NewOrderService(orders, products, payments, stock),
	}
}

func (f *orderFixture) addProduct(t *testing.T, name string, quantity int, sellingPrice int64) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Name:         name,
		Quantity:     quantity,
		CostPrice:    sellingPrice / 2,
		SellingPrice: sellingPrice,
	}
	if err := f.products.Create(context.Background(), product); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func (f *orderFixture) productQuantity(t *testing.T, id uuid.UUID) int {
	t.Helper()
	product, err := f.products.GetByID(context.Background(), id)
	if err != nil || product == nil {
		t.Fatalf("get product %s: %v", id, err)
	}
	return product.Quantity
}

func TestCreateOrder_SnapshotsPricesAndComputesTotal(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	paper := f.addProduct(t, "A4 Paper", 100, 250) // 2.50 per unit

	order, err := f.service.CreateOrder(ctx, &CreateOrderInput{
		CustomerName: "Asha",
		Discount:     100,
		Items: []OrderItemInput{
			{ProductID: &paper.ID, Quantity: 4},
			{ProductName: "Custom wedding card", Quantity: 1, SellingPrice: 5000, IsCustom: true},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	if order.Status != enum.OrderStatusPending {
		t.Errorf("status = %v, want pending", order.Status)
	}
	// 4 x 250 + 5000 - 100 discount
	if order.TotalAmount != 5900 {
		t.Errorf("total = %d, want 5900", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].SellingPrice != 250 || order.Items[0].ProductName != "A4 Paper" {
		t.Errorf("catalog item not snapshotted: %+v", order.Items[0])
	}
	if order.Items[1].ProductID != nil {
		t.Error("custom item must not carry a product reference")
	}
}

func TestCreateOrder_DiscountNeverDrivesTotalNegative(t *testing.T) {
	f := newOrderFixture()
	order, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerName: "Ben",
		Discount:     10000,
		Items:        []OrderItemInput{{ProductName: "Print job", Quantity: 1, SellingPrice: 500, IsCustom: true}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if order.TotalAmount != 0 {
		t.Errorf("total = %d, want 0", order.TotalAmount)
	}
}

func TestUpdateStatus_CompletionDeductsCatalogItemsOnly(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	paper := f.addProduct(t, "A4 Paper", 10, 250)

	order, err := f.service.CreateOrder(ctx, &CreateOrderInput{
		CustomerName: "Asha",
		Items: []OrderItemInput{
			{ProductID: &paper.ID, Quantity: 4},
			{ProductName: "Custom banner", Quantity: 3, SellingPrice: 1000, IsCustom: true},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	updated, err := f.service.UpdateStatus(ctx, order.ID, &UpdateStatusInput{Status: enum.OrderStatusCompleted})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.CompletedAt == nil {
		t.Error("completed order has no completion timestamp")
	}
	if got := f.productQuantity(t, paper.ID); got != 6 {
		t.Errorf("quantity = %d, want 6 (custom items must not deduct)", got)
	}
}

func TestUpdateStatus_LeavingCompletedRestoresStock(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	paper := f.addProduct(t, "A4 Paper", 10, 250)

	order, err := f.service.CreateOrder(ctx, &CreateOrderInput{
		CustomerName: "Asha",
		Items:        []OrderItemInput{{ProductID: &paper.ID, Quantity: 4}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	if _, err := f.service.UpdateStatus(ctx, order.ID, &UpdateStatusInput{Status: enum.OrderStatusCompleted}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	reverted, err := f.service.UpdateStatus(ctx, order.ID, &UpdateStatusInput{Status: enum.OrderStatusPending})
	if err != nil {
		t.Fatalf("revert failed: %v", err)
	}

	if reverted.CompletedAt != nil {
		t.Error("reverted order still has a completion timestamp")
	}
	if got := f.productQuantity(t, paper.ID); got != 10 {
		t.Errorf("quantity = %d, want 10", got)
	}
}

func TestUpdateStatus_SplitPaymentMustMatchTotalExactly(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	order, err := f.service.CreateOrder(ctx, &CreateOrderInput{
		CustomerName: "Carol",
		Items:        []OrderItemInput{{ProductName: "Banner", Quantity: 1, SellingPrice: 1000, IsCustom: true}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	_, err = f.service.UpdateStatus(ctx, order.ID, &UpdateStatusInput{
		Status: enum.OrderStatusDelivered,
		Payment: &PaymentInput{
			Method:       enum.PaymentMethodSplit,
			Status:       enum.PaymentStatusPaid,
			CashAmount:   500,
			OnlineAmount: 499,
		},
	})
	if err == nil {
		t.Fatal("expected a validation error for a one-cent shortfall")
	}

	// The rejected settlement must leave the order untouched.
	unchanged, err := f.service.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if unchanged.Status != enum.OrderStatusPending || unchanged.Payment.TotalPaid != 0 {
		t.Errorf("order mutated by rejected payment: status=%v paid=%d", unchanged.Status, unchanged.Payment.TotalPaid)
	}

	paid, err := f.service.UpdateStatus(ctx, order.ID, &UpdateStatusInput{
		Status: enum.OrderStatusDelivered,
		Payment: &PaymentInput{
			Method:       enum.PaymentMethodSplit,
			Status:       enum.PaymentStatusPaid,
			CashAmount:   500,
			OnlineAmount: 500,
		},
	})
	if err != nil {
		t.Fatalf("exact split payment rejected: %v", err)
	}
	if paid.Payment.TotalPaid != 1000 || paid.Payment.Status != enum.PaymentStatusPaid {
		t.Errorf("payment snapshot wrong: %+v", paid.Payment)
	}
}

func TestUpdateStatus_FullCashPaymentFillsAmountFromTotal(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	order, err := f.service.CreateOrder(ctx, &CreateOrderInput{
		CustomerName: "Dan",
		Items:        []OrderItemInput{{ProductName: "Poster", Quantity: 2, SellingPrice: 750, IsCustom: true}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	paid, err := f.service.UpdateStatus(ctx, order.ID, &UpdateStatusInput{
		Status:  enum.OrderStatusDelivered,
		Payment: &PaymentInput{Method: enum.PaymentMethodCash, Status: enum.PaymentStatusPaid},
	})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if paid.Payment.CashAmount != 1500 || paid.Payment.TotalPaid != 1500 {
		t.Errorf("cash amount not filled from total: %+v", paid.Payment)
	}
}

func TestUpdateStatus_PartialBalanceCoveringTotalPromotesToPaid(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	order, err := f.service.CreateOrder(ctx, &CreateOrderInput{
		CustomerName: "Hana",
		Items:        []OrderItemInput{{ProductName: "Flyers", Quantity: 1, SellingPrice: 500, IsCustom: true}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	completed, err := f.service.UpdateStatus(ctx, order.ID, &UpdateStatusInput{
		Status: enum.OrderStatusCompleted,
		Payment: &PaymentInput{
			Method:     enum.PaymentMethodCash,
			Status:     enum.PaymentStatusPartial,
			CashAmount: 500,
		},
	})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if completed.Payment.Status != enum.PaymentStatusPaid {
		t.Errorf("status = %v, want paid (partial balance covers the total)", completed.Payment.Status)
	}
	if completed.Payment.TotalPaid != 500 {
		t.Errorf("total paid = %d, want 500", completed.Payment.TotalPaid)
	}

	persisted, err := f.service.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if persisted.Payment.Status != enum.PaymentStatusPaid {
		t.Errorf("persisted status = %v, want paid", persisted.Payment.Status)
	}
}

func TestAddPartialPayment_PromotesToPaidAtTotal(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	order, err := f.service.CreateOrder(ctx, &CreateOrderInput{
		CustomerName: "Eve",
		Items:        []OrderItemInput{{ProductName: "Invitation cards", Quantity: 1, SellingPrice: 1000, IsCustom: true}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	after, err := f.service.AddPartialPayment(ctx, order.ID, 500, "first installment")
	if err != nil {
		t.Fatalf("AddPartialPayment failed: %v", err)
	}
	if after.Payment.Status != enum.PaymentStatusPartial {
		t.Errorf("status = %v, want partial", after.Payment.Status)
	}

	after, err = f.service.AddPartialPayment(ctx, order.ID, 500, "settled")
	if err != nil {
		t.Fatalf("AddPartialPayment failed: %v", err)
	}
	if after.Payment.Status != enum.PaymentStatusPaid {
		t.Errorf("status = %v, want paid", after.Payment.Status)
	}
	if after.Payment.TotalPaid != 1000 {
		t.Errorf("total paid = %d, want 1000", after.Payment.TotalPaid)
	}

	history, err := f.service.ListPartialPayments(ctx, order.ID)
	if err != nil {
		t.Fatalf("ListPartialPayments failed: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("installment history has %d entries, want 2", len(history))
	}
}

func TestEditOrder_CompletedOrderRebalancesStock(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	paper := f.addProduct(t, "A4 Paper", 10, 250)
	vinyl := f.addProduct(t, "Vinyl Sheet", 8, 900)

	order, err := f.service.CreateOrder(ctx, &CreateOrderInput{
		CustomerName: "Fay",
		Items:        []OrderItemInput{{ProductID: &paper.ID, Quantity: 4}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if _, err := f.service.UpdateStatus(ctx, order.ID, &UpdateStatusInput{Status: enum.OrderStatusCompleted}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	edited, err := f.service.EditOrder(ctx, order.ID, &EditOrderInput{
		Items: []OrderItemInput{{ProductID: &vinyl.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("EditOrder failed: %v", err)
	}

	if got := f.productQuantity(t, paper.ID); got != 10 {
		t.Errorf("paper quantity = %d, want 10 (old deduction reverted)", got)
	}
	if got := f.productQuantity(t, vinyl.ID); got != 6 {
		t.Errorf("vinyl quantity = %d, want 6 (new deduction applied)", got)
	}
	if edited.TotalAmount != 1800 {
		t.Errorf("total = %d, want 1800", edited.TotalAmount)
	}
}

func TestDeleteOrder_CompletedOrderRestoresStock(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	paper := f.addProduct(t, "A4 Paper", 10, 250)

	order, err := f.service.CreateOrder(ctx, &CreateOrderInput{
		CustomerName: "Gus",
		Items:        []OrderItemInput{{ProductID: &paper.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if _, err := f.service.UpdateStatus(ctx, order.ID, &UpdateStatusInput{Status: enum.OrderStatusCompleted}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if err := f.service.DeleteOrder(ctx, order.ID); err != nil {
		t.Fatalf("DeleteOrder failed: %v", err)
	}
	if got := f.productQuantity(t, paper.ID); got != 10 {
		t.Errorf("quantity = %d, want 10", got)
	}
	if _, err := f.service.GetOrder(ctx, order.ID); err == nil {
		t.Error("deleted order still retrievable")
	}
}
