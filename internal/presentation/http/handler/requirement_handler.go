package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mainakibe/printdesk-api/internal/application/service"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/dto/request"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/dto/response"
)

// RequirementHandler handles the requirement report, the carry plan, and
// per-product depot splits.
type RequirementHandler struct {
	requirementService *service.RequirementService
	stockService       *service.StockService
}

// NewRequirementHandler creates a new requirement handler
func NewRequirementHandler(requirementService *service.RequirementService, stockService *service.StockService) *RequirementHandler {
	return &RequirementHandler{
		requirementService: requirementService,
		stockService:       stockService,
	}
}

// GetReport computes and returns the current requirement report
func (h *RequirementHandler) GetReport(c *gin.Context) {
	report, err := h.requirementService.ComputeRequirements(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Requirements computed successfully", report)
}

// UpdatePlanEntry records an operator override on a product's carry plan
func (h *RequirementHandler) UpdatePlanEntry(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "productId")
	if !ok {
		return
	}

	var req request.UpdatePlanEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.requirementService.UpdateLogisticsEntry(c.Request.Context(), id, req.Field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Plan entry updated successfully", entry)
}

// ResetPlan wipes every plan entry and rebuilds the defaults. It discards
// operator overrides, so the caller must confirm explicitly.
func (h *RequirementHandler) ResetPlan(c *gin.Context) {
	if c.Query("confirm") != "true" {
		response.BadRequest(c, "Resetting the plan discards manual edits; pass confirm=true to proceed")
		return
	}

	report, err := h.requirementService.ResetLogisticsPlan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logistics plan reset successfully", report)
}

// GetDepotSplit returns a product's per-depot stock counts
func (h *RequirementHandler) GetDepotSplit(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	split, err := h.stockService.GetDepotSplit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Depot split retrieved successfully", split)
}

// SetDepotSplit overwrites a product's per-depot stock counts
func (h *RequirementHandler) SetDepotSplit(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.SetDepotSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	split, err := h.stockService.SetDepotSplit(c.Request.Context(), id, req.DepotA, req.DepotB)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Depot split updated successfully", split)
}
