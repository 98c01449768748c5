package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/pkg/apperror"
)

// AggregateDemand sums the ordered quantity per catalog product across
// pending orders. Custom items have no catalog backing and are excluded;
// they are costed as pure production, never as shortage.
func AggregateDemand(orders []entity.Order) map[uuid.UUID]int {
	demand := make(map[uuid.UUID]int)
	for i := range orders {
		if orders[i].Status != enum.OrderStatusPending {
			continue
		}
		for j := range orders[i].Items {
			item := &orders[i].Items[j]
			if !item.CountsTowardStock() {
				continue
			}
			demand[*item.ProductID] += item.Quantity
		}
	}
	return demand
}

// MergePlans combines persisted plan entries with freshly computed defaults:
// existing entries always win, computed entries only fill the gaps. This is
// what lets an operator's manual carry numbers survive recomputation.
func MergePlans(existing, computed map[uuid.UUID]*entity.LogisticsPlanEntry) map[uuid.UUID]*entity.LogisticsPlanEntry {
	merged := make(map[uuid.UUID]*entity.LogisticsPlanEntry, len(existing)+len(computed))
	for id, entry := range computed {
		merged[id] = entry
	}
	for id, entry := range existing {
		merged[id] = entry
	}
	return merged
}

// RequirementLine is one product's row in the requirement report.
type RequirementLine struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	CurrentStock int       `json:"current_stock"`
	DepotA       int       `json:"depot_a"`
	DepotB       int       `json:"depot_b"`
	OrderedQty   int       `json:"ordered_qty"`
	Needed       int       `json:"needed"`
	CarryFromA   int       `json:"carry_from_a"`
	CarryFromB   int       `json:"carry_from_b"`
}

// CarryPickup is one stop on a depot pick-up list.
type CarryPickup struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Units     int       `json:"units"`
}

// RequirementReport is the full "what do I need to print/buy/carry" view
// derived from the open orders and the stock ledgers. The depot names label
// the pick-up lists for the operator.
type RequirementReport struct {
	Lines       []RequirementLine `json:"lines"`
	DepotAName  string            `json:"depot_a_name"`
	DepotBName  string            `json:"depot_b_name"`
	PickupFromA []CarryPickup     `json:"pickup_from_a"`
	PickupFromB []CarryPickup     `json:"pickup_from_b"`
}

// RequirementService combines the demand aggregator with the shortage and
// logistics planner.
type RequirementService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	depotRepo   repository.DepotStockRepository
	planRepo    repository.LogisticsPlanRepository
	depotAName  string
	depotBName  string
}

// NewRequirementService creates a new requirement service
func NewRequirementService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	depotRepo repository.DepotStockRepository,
	planRepo repository.LogisticsPlanRepository,
) *RequirementService {
	return &RequirementService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		depotRepo:   depotRepo,
		planRepo:    planRepo,
		depotAName:  "Depot A",
		depotBName:  "Depot B",
	}
}

// WithDepotNames overrides the display names used on the report's pick-up lists.
func (s *RequirementService) WithDepotNames(depotA, depotB string) *RequirementService {
	if depotA != "" {
		s.depotAName = depotA
	}
	if depotB != "" {
		s.depotBName = depotB
	}
	return s
}

// defaultPlanEntry is the greedy two-bucket default: nothing when a shortage
// exists (the whole order cannot be met from stock, so the carry decision is
// deferred to the operator), otherwise depot A first, remainder from depot B.
func defaultPlanEntry(productID uuid.UUID, ordered, needed int, split entity.Split) *entity.LogisticsPlanEntry {
	entry := &entity.LogisticsPlanEntry{ProductID: productID}
	if needed > 0 {
		return entry
	}
	entry.CarryFromA = minInt(ordered, split.A)
	entry.CarryFromB = minInt(ordered-entry.CarryFromA, split.B)
	return entry
}

// ComputeRequirements builds the requirement report for the current set of
// pending orders and persists default plan entries for products that lack
// one (idempotent-by-gap: existing entries are never touched). Products
// missing from the catalog degrade to zero stock, never to an error.
func (s *RequirementService) ComputeRequirements(ctx context.Context) (*RequirementReport, error) {
	pending, err := s.orderRepo.ListByStatus(ctx, enum.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	demand := AggregateDemand(pending)

	// Snapshot names from order items so lines for deleted products still
	// render something meaningful.
	snapshotNames := make(map[uuid.UUID]string)
	for i := range pending {
		for j := range pending[i].Items {
			item := &pending[i].Items[j]
			if item.CountsTowardStock() {
				snapshotNames[*item.ProductID] = item.ProductName
			}
		}
	}

	productIDs := make([]uuid.UUID, 0, len(demand))
	for id := range demand {
		productIDs = append(productIDs, id)
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	depots, err := s.depotRepo.GetByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	existing, err := s.planRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	computed := make(map[uuid.UUID]*entity.LogisticsPlanEntry, len(demand))
	splits := make(map[uuid.UUID]entity.Split, len(demand))
	for id, ordered := range demand {
		canonical := 0
		if product := productMap[id]; product != nil {
			canonical = product.Quantity
		}
		split := entity.Split{A: canonical, B: 0}
		if record := depots[id]; record != nil {
			split = entity.Split{A: record.DepotAStock, B: record.DepotBStock}.Clamp(canonical)
		}
		splits[id] = split

		needed := maxInt(0, ordered-canonical)
		computed[id] = defaultPlanEntry(id, ordered, needed, split)
	}

	merged := MergePlans(existing, computed)

	// Persist only the gaps we filled.
	for id := range computed {
		if _, ok := existing[id]; !ok {
			if err := s.planRepo.Upsert(ctx, merged[id]); err != nil {
				return nil, err
			}
		}
	}

	return s.buildReport(demand, productMap, splits, merged, snapshotNames), nil
}

func (s *RequirementService) buildReport(
	demand map[uuid.UUID]int,
	productMap map[uuid.UUID]*entity.Product,
	splits map[uuid.UUID]entity.Split,
	plans map[uuid.UUID]*entity.LogisticsPlanEntry,
	snapshotNames map[uuid.UUID]string,
) *RequirementReport {
	report := &RequirementReport{
		Lines:       make([]RequirementLine, 0, len(demand)),
		DepotAName:  s.depotAName,
		DepotBName:  s.depotBName,
		PickupFromA: []CarryPickup{},
		PickupFromB: []CarryPickup{},
	}

	for id, ordered := range demand {
		line := RequirementLine{
			ProductID:  id,
			Name:       snapshotNames[id],
			OrderedQty: ordered,
		}
		if product := productMap[id]; product != nil {
			line.Name = product.Name
			line.Category = product.CategoryName()
			line.CurrentStock = product.Quantity
		}
		split := splits[id]
		line.DepotA = split.A
		line.DepotB = split.B
		line.Needed = maxInt(0, ordered-line.CurrentStock)
		if plan := plans[id]; plan != nil {
			line.CarryFromA = plan.CarryFromA
			line.CarryFromB = plan.CarryFromB
		}
		report.Lines = append(report.Lines, line)
	}

	sort.Slice(report.Lines, func(i, j int) bool {
		if report.Lines[i].Name == report.Lines[j].Name {
			return report.Lines[i].ProductID.String() < report.Lines[j].ProductID.String()
		}
		return report.Lines[i].Name < report.Lines[j].Name
	})

	for _, line := range report.Lines {
		if line.CarryFromA > 0 {
			report.PickupFromA = append(report.PickupFromA, CarryPickup{
				ProductID: line.ProductID, Name: line.Name, Units: line.CarryFromA,
			})
		}
		if line.CarryFromB > 0 {
			report.PickupFromB = append(report.PickupFromB, CarryPickup{
				ProductID: line.ProductID, Name: line.Name, Units: line.CarryFromB,
			})
		}
	}

	return report
}

// Plan entry fields an operator can override.
const (
	PlanFieldCarryFromA = "carry_from_a"
	PlanFieldCarryFromB = "carry_from_b"
)

// UpdateLogisticsEntry records an operator override for one side of a
// product's carry plan. Negative values are normalized to zero.
func (s *RequirementService) UpdateLogisticsEntry(ctx context.Context, productID uuid.UUID, field string, value int) (*entity.LogisticsPlanEntry, error) {
	if value < 0 {
		value = 0
	}

	entry, err := s.planRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &entity.LogisticsPlanEntry{ProductID: productID}
	}

	switch field {
	case PlanFieldCarryFromA:
		entry.CarryFromA = value
	case PlanFieldCarryFromB:
		entry.CarryFromB = value
	default:
		return nil, apperror.NewBadRequestError("Unknown plan field: " + field)
	}

	if err := s.planRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ResetLogisticsPlan discards every plan entry, operator overrides included,
// and rebuilds defaults for the current demand. This is the only path that
// overwrites manual edits, so callers must treat it as a deliberate action.
func (s *RequirementService) ResetLogisticsPlan(ctx context.Context) (*RequirementReport, error) {
	if err := s.planRepo.DeleteAll(ctx); err != nil {
		return nil, err
	}
	return s.ComputeRequirements(ctx)
}
