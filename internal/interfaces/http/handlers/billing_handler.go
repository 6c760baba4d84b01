package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/internal/usecases"
)

// BillingHandler handles hosted checkout and subscription endpoints
type BillingHandler struct {
	billingUsecase *usecases.BillingUsecase
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingUsecase *usecases.BillingUsecase) *BillingHandler {
	return &BillingHandler{billingUsecase: billingUsecase}
}

// CreatePaymentSession opens a one-time checkout
// POST /api/v1/billing/payments
func (h *BillingHandler) CreatePaymentSession(c *gin.Context) {
	if !h.configured(c) {
		return
	}
	var input entities.CreatePaymentSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Missing required fields", err)
		return
	}

	session, err := h.billingUsecase.CreatePaymentSession(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, session)
}

// POST /api/v1/billing/subscriptions
func (h *BillingHandler) CreateSubscriptionSession(c *gin.Context) {
	if !h.configured(c) {
		return
	}
	var input entities.CreateSubscriptionSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Missing required fields", err)
		return
	}

	session, err := h.billingUsecase.CreateSubscriptionSession(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, session)
}

// GET /api/v1/billing/subscriptions/:workerId
func (h *BillingHandler) GetSubscription(c *gin.Context) {
	sub, err := h.billingUsecase.GetSubscription(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":                 sub.ID,
		"status":             sub.Status,
		"current_period_end": sub.CurrentPeriodEnd,
		"amount":             sub.Amount,
	})
}

// POST /api/v1/billing/subscriptions/cancel
func (h *BillingHandler) CancelSubscription(c *gin.Context) {
	if !h.configured(c) {
		return
	}
	var input entities.CancelSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Missing required fields", err)
		return
	}

	sub, err := h.billingUsecase.CancelSubscription(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":                   sub.ID,
		"status":               sub.Status,
		"cancel_at_period_end": sub.CancelAtPeriodEnd,
	})
}

// GET /api/v1/billing/config
func (h *BillingHandler) GetConfig(c *gin.Context) {
	response.Success(c, http.StatusOK, h.billingUsecase.Config())
}

// configured rejects the request before any body parsing when no provider is set up.
func (h *BillingHandler) configured(c *gin.Context) bool {
	if h.billingUsecase.Config().Configured {
		return true
	}
	fail(c, domainerrors.NotConfigured("Payment service not configured"))
	return false
}
