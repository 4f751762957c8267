package handler

import (
	"mintology-gateway/internal/adapter/http/dto"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles storefront pricing and checkout endpoints.
type OrderHandler struct {
	pricing  ports.PricingService
	checkout ports.CheckoutService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(pricing ports.PricingService, checkout ports.CheckoutService) *OrderHandler {
	return &OrderHandler{pricing: pricing, checkout: checkout}
}

// Quote handles GET /api/v1/orders/quote?pid=...&country=...
func (h *OrderHandler) Quote(c *gin.Context) {
	order, err := h.pricing.Quote(c.Request.Context(), c.Query("pid"), c.Query("country"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// Summary handles GET /api/v1/orders/summary?pid=...&country=...
func (h *OrderHandler) Summary(c *gin.Context) {
	order, err := h.pricing.OrderSummary(c.Request.Context(), c.Query("pid"), c.Query("country"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// Checkout handles POST /api/v1/orders/checkout.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.checkout.Checkout(c.Request.Context(), ports.CheckoutRequest{
		ProjectID:       req.ProjectID,
		FullName:        req.Billing.FullName,
		Email:           req.Billing.Email,
		Phone:           req.Billing.Phone,
		Country:         req.Billing.Country,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CheckoutResponse{
		Message:  "Payment successful",
		Amount:   result.Order.TotalAmount,
		Currency: result.Order.Currency,
	})
}
