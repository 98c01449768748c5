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

type ledgerFixture struct {
	needs      *memory.ManualNeedRepository
	writings   *memory.UnpaidWritingRepository
	notes      *memory.NoteRepository
	orders     *memory.OrderRepository
	categories *memory.CategoryRepository
	service    *LedgerService
}

func newLedgerFixture() *ledgerFixture {
	needs := memory.NewManualNeedRepository()
	writings := memory.NewUnpaidWritingRepository()
	notes := memory.NewNoteRepository()
	orders := memory.NewOrderRepository()
	categories := memory.NewCategoryRepository()
	return &ledgerFixture{
		needs:      needs,
		writings:   writings,
		notes:      notes,
		orders:     orders,
		categories: categories,
		service:    NewLedgerService(needs, writings, notes, orders, categories),
	}
}

func (f *ledgerFixture) addCategory(t *testing.T, name, slug string) uuid.UUID {
	t.Helper()
	category := &entity.Category{Name: name, Slug: slug}
	if err := f.categories.Create(context.Background(), category); err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category.ID
}

func (f *ledgerFixture) addOrder(t *testing.T, customer string, total int64) uuid.UUID {
	t.Helper()
	order := &entity.Order{
		CustomerName: customer,
		OrderDate:    time.Now(),
		Status:       enum.OrderStatusPending,
		TotalAmount:  total,
	}
	if err := f.orders.Create(context.Background(), order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order.ID
}

func TestSetManualNeed_UpsertsByProductKeepingIdentity(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()
	productID := uuid.New()

	first, err := f.service.SetManualNeed(ctx, productID, 20, "for the school run")
	if err != nil {
		t.Fatalf("SetManualNeed failed: %v", err)
	}

	second, err := f.service.SetManualNeed(ctx, productID, 35, "increased")
	if err != nil {
		t.Fatalf("SetManualNeed failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second submission changed the entry's ID: %s vs %s", second.ID, first.ID)
	}
	if second.TotalRequired != 35 || second.Note != "increased" {
		t.Errorf("entry not overwritten: %+v", second)
	}

	all, err := f.service.ListManualNeeds(ctx)
	if err != nil {
		t.Fatalf("ListManualNeeds failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected a single entry per product, got %d", len(all))
	}
}

func TestSetManualNeed_NormalizesNegativeRequirement(t *testing.T) {
	f := newLedgerFixture()
	need, err := f.service.SetManualNeed(context.Background(), uuid.New(), -4, "")
	if err != nil {
		t.Fatalf("SetManualNeed failed: %v", err)
	}
	if need.TotalRequired != 0 {
		t.Errorf("total required = %d, want 0", need.TotalRequired)
	}
}

func TestAssignOrderCategory_UnpaidCategoryWritesCreditBookOnce(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()
	unpaidID := f.addCategory(t, "Unpaid", entity.UnpaidCategorySlug)
	orderID := f.addOrder(t, "Hana", 2500)

	if _, err := f.service.AssignOrderCategory(ctx, orderID, &unpaidID); err != nil {
		t.Fatalf("AssignOrderCategory failed: %v", err)
	}
	// Re-filing the same order must not duplicate the entry.
	if _, err := f.service.AssignOrderCategory(ctx, orderID, &unpaidID); err != nil {
		t.Fatalf("AssignOrderCategory failed: %v", err)
	}

	writings, err := f.service.ListUnpaidWritings(ctx)
	if err != nil {
		t.Fatalf("ListUnpaidWritings failed: %v", err)
	}
	if len(writings) != 1 {
		t.Fatalf("credit book has %d entries, want 1", len(writings))
	}
	w := writings[0]
	if w.Title != "Order for Hana" || w.CustomerName != "Hana" || w.Amount != 2500 {
		t.Errorf("credit-book entry wrong: %+v", w)
	}
	if w.OrderID == nil || *w.OrderID != orderID {
		t.Error("credit-book entry not linked to the order")
	}
}

func TestAssignOrderCategory_OtherCategoriesDoNotTouchCreditBook(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()
	regularID := f.addCategory(t, "Regular", "regular")
	orderID := f.addOrder(t, "Ivan", 900)

	order, err := f.service.AssignOrderCategory(ctx, orderID, &regularID)
	if err != nil {
		t.Fatalf("AssignOrderCategory failed: %v", err)
	}
	if order.CategoryID == nil || *order.CategoryID != regularID {
		t.Error("order category not assigned")
	}

	writings, err := f.service.ListUnpaidWritings(ctx)
	if err != nil {
		t.Fatalf("ListUnpaidWritings failed: %v", err)
	}
	if len(writings) != 0 {
		t.Errorf("credit book has %d entries, want 0", len(writings))
	}
}

func TestNotes_UnwrittenNoteReadsEmpty(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	note, err := f.service.GetNote(ctx, entity.NoteKeyGeneral)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if note.Body != "" {
		t.Errorf("unwritten note body = %q, want empty", note.Body)
	}

	if _, err := f.service.SetNote(ctx, entity.NoteKeyNeedsPriority, "toner first"); err != nil {
		t.Fatalf("SetNote failed: %v", err)
	}
	note, err = f.service.GetNote(ctx, entity.NoteKeyNeedsPriority)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if note.Body != "toner first" {
		t.Errorf("note body = %q, want %q", note.Body, "toner first")
	}
}

func TestNotes_UnknownKeyRejected(t *testing.T) {
	f := newLedgerFixture()
	if _, err := f.service.GetNote(context.Background(), "diary"); err == nil {
		t.Error("expected an error for an unknown note key")
	}
	if _, err := f.service.SetNote(context.Background(), "diary", "x"); err == nil {
		t.Error("expected an error for an unknown note key")
	}
}
