package service

import (
	"context"
	"time"

	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/pkg/pagination"
)

// DashboardService provides the shop overview numbers
type DashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	writingRepo repository.UnpaidWritingRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	writingRepo repository.UnpaidWritingRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		writingRepo: writingRepo,
	}
}

// DashboardStats represents the shop overview. Money fields are decimals
// for display, derived from the stored cent values.
type DashboardStats struct {
	TotalProducts      int64            `json:"total_products"`
	TotalOrders        int64            `json:"total_orders"`
	PendingOrders      int64            `json:"pending_orders"`
	CompletedToday     int64            `json:"completed_today"`
	TotalRevenue       float64          `json:"total_revenue"`
	RevenueToday       float64          `json:"revenue_today"`
	OutstandingBalance float64          `json:"outstanding_balance"`
	CreditBookTotal    float64          `json:"credit_book_total"`
	LowStockCount      int64            `json:"low_stock_count"`
	LowStockProducts   []entity.Product `json:"low_stock_products"`
}

// GetDashboardStats assembles the overview. Revenue counts completed orders
// only; the outstanding balance is the unpaid remainder across every order
// plus the manual credit book.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	countParams := pagination.DefaultPagination()
	countParams.PerPage = 1

	_, productCount, err := s.productRepo.List(ctx, &repository.ProductFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = productCount

	_, orderCount, err := s.orderRepo.List(ctx, &repository.OrderFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = orderCount

	pending, err := s.orderRepo.ListByStatus(ctx, enum.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	stats.PendingOrders = int64(len(pending))

	completed, err := s.orderRepo.ListByStatus(ctx, enum.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	var totalRevenue, revenueToday int64
	for i := range completed {
		totalRevenue += completed[i].TotalAmount
		if completed[i].CompletedAt != nil && !completed[i].CompletedAt.Before(startOfDay) {
			revenueToday += completed[i].TotalAmount
			stats.CompletedToday++
		}
	}
	stats.TotalRevenue = float64(totalRevenue) / 100
	stats.RevenueToday = float64(revenueToday) / 100

	var outstanding int64
	for _, status := range []enum.OrderStatus{enum.OrderStatusPending, enum.OrderStatusDelivered} {
		orders, err := s.orderRepo.ListByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		for i := range orders {
			outstanding += orders[i].Due()
		}
	}
	for i := range completed {
		outstanding += completed[i].Due()
	}
	stats.OutstandingBalance = float64(outstanding) / 100

	writings, err := s.writingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var creditTotal int64
	for i := range writings {
		creditTotal += writings[i].Amount
	}
	stats.CreditBookTotal = float64(creditTotal) / 100

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = int64(len(lowStock))
	stats.LowStockProducts = lowStock

	return stats, nil
}
