package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mainakibe/printdesk-api/internal/application/service"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/dto/request"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/dto/response"
	"github.com/mainakibe/printdesk-api/pkg/pagination"
	"github.com/mainakibe/printdesk-api/pkg/utils"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService  *service.OrderService
	ledgerService *service.LedgerService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, ledgerService *service.LedgerService) *OrderHandler {
	return &OrderHandler{orderService: orderService, ledgerService: ledgerService}
}

func toItemInputs(items []request.OrderItemRequest) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.OrderItemInput{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			CostPrice:    utils.ToCents(item.CostPrice),
			SellingPrice: utils.ToCents(item.SellingPrice),
			IsCustom:     item.IsCustom,
		})
	}
	return inputs
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Status != "" {
		status, ok := ParseOrderStatus(filter.Status)
		if !ok {
			response.BadRequest(c, "Unknown status filter: "+filter.Status)
			return
		}
		params.Status = &status
	}
	if filter.StartDate != "" {
		if start, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &start
		}
	}
	if filter.EndDate != "" {
		if end, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			endOfDay := end.Add(24*time.Hour - time.Nanosecond)
			params.EndDate = &endOfDay
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Create handles order creation
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CategoryID:    req.CategoryID,
		OrderDate:     req.OrderDate,
		Discount:      utils.ToCents(req.Discount),
		Note:          req.Note,
		Items:         toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// UpdateStatus handles order status changes, with optional settlement details
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status, _ := ParseOrderStatus(req.Status)
	input := &service.UpdateStatusInput{Status: status}

	if req.Payment != nil {
		paymentStatus, _ := ParsePaymentStatus(req.Payment.Status)
		input.Payment = &service.PaymentInput{
			Method:       enum.PaymentMethod(req.Payment.Method),
			Status:       paymentStatus,
			CashAmount:   utils.ToCents(req.Payment.CashAmount),
			OnlineAmount: utils.ToCents(req.Payment.OnlineAmount),
		}
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// Edit handles order edits
func (h *OrderHandler) Edit(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.EditOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CategoryID:    req.CategoryID,
		OrderDate:     req.OrderDate,
		Note:          req.Note,
	}
	if req.Discount != nil {
		cents := utils.ToCents(*req.Discount)
		input.Discount = &cents
	}
	if req.Items != nil {
		input.Items = toItemInputs(req.Items)
	}

	order, err := h.orderService.EditOrder(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// Delete handles order deletion
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AddPartialPayment handles recording an installment against an order
func (h *OrderHandler) AddPartialPayment(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.PartialPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.AddPartialPayment(c.Request.Context(), id, utils.ToCents(req.Amount), req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", order)
}

// ListPartialPayments handles listing an order's installment history
func (h *OrderHandler) ListPartialPayments(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	payments, err := h.orderService.ListPartialPayments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

// AssignCategory files an order under a category. Filing under the unpaid
// category also writes the order into the credit book.
func (h *OrderHandler) AssignCategory(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AssignCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.ledgerService.AssignOrderCategory(c.Request.Context(), id, req.CategoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order category updated successfully", order)
}
