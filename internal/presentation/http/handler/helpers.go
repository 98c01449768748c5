package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/enum"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/dto/response"
)

// ParseUUIDParam reads a UUID path parameter, replying 400 on garbage input
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// ParseOrderStatus maps the wire status name to its enum value
func ParseOrderStatus(s string) (enum.OrderStatus, bool) {
	switch s {
	case "Pending":
		return enum.OrderStatusPending, true
	case "Delivered":
		return enum.OrderStatusDelivered, true
	case "Completed":
		return enum.OrderStatusCompleted, true
	}
	return 0, false
}

// ParsePaymentStatus maps the wire payment status name to its enum value
func ParsePaymentStatus(s string) (enum.PaymentStatus, bool) {
	switch s {
	case "Unpaid":
		return enum.PaymentStatusUnpaid, true
	case "Partial":
		return enum.PaymentStatusPartial, true
	case "Paid":
		return enum.PaymentStatusPaid, true
	}
	return 0, false
}
