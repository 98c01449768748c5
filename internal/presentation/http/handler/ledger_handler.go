package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mainakibe/printdesk-api/internal/application/service"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/dto/request"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/dto/response"
	"github.com/mainakibe/printdesk-api/pkg/utils"
)

// LedgerHandler handles the manual needs list, the credit book, and the
// scratch notes.
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// ListManualNeeds handles listing manual purchasing needs
func (h *LedgerHandler) ListManualNeeds(c *gin.Context) {
	needs, err := h.ledgerService.ListManualNeeds(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Manual needs retrieved successfully", needs)
}

// SetManualNeed handles recording a manual purchasing need
func (h *LedgerHandler) SetManualNeed(c *gin.Context) {
	var req request.ManualNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	need, err := h.ledgerService.SetManualNeed(c.Request.Context(), req.ProductID, req.TotalRequired, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Manual need recorded successfully", need)
}

// DeleteManualNeed handles removing a manual purchasing need
func (h *LedgerHandler) DeleteManualNeed(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteManualNeed(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListUnpaidWritings handles listing the credit book
func (h *LedgerHandler) ListUnpaidWritings(c *gin.Context) {
	writings, err := h.ledgerService.ListUnpaidWritings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Unpaid writings retrieved successfully", writings)
}

// CreateUnpaidWriting handles adding a manual credit-book entry
func (h *LedgerHandler) CreateUnpaidWriting(c *gin.Context) {
	var req request.UnpaidWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	writing, err := h.ledgerService.CreateUnpaidWriting(c.Request.Context(), &service.CreateUnpaidWritingInput{
		Title:        req.Title,
		CustomerName: req.CustomerName,
		Amount:       utils.ToCents(req.Amount),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Unpaid writing created successfully", writing)
}

// UpdateUnpaidWriting handles updating a credit-book entry
func (h *LedgerHandler) UpdateUnpaidWriting(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateUnpaidWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateUnpaidWritingInput{
		Title:        req.Title,
		CustomerName: req.CustomerName,
	}
	if req.Amount != nil {
		cents := utils.ToCents(*req.Amount)
		input.Amount = &cents
	}

	writing, err := h.ledgerService.UpdateUnpaidWriting(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Unpaid writing updated successfully", writing)
}

// DeleteUnpaidWriting handles removing a credit-book entry
func (h *LedgerHandler) DeleteUnpaidWriting(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteUnpaidWriting(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetNote handles reading a scratch note
func (h *LedgerHandler) GetNote(c *gin.Context) {
	note, err := h.ledgerService.GetNote(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Note retrieved successfully", note)
}

// SetNote handles overwriting a scratch note
func (h *LedgerHandler) SetNote(c *gin.Context) {
	var req request.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	note, err := h.ledgerService.SetNote(c.Request.Context(), c.Param("key"), req.Body)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Note saved successfully", note)
}
