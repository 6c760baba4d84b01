package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/infrastructure/identity"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/internal/usecases"
)

var webhookHeaders = []string{identity.HeaderID, identity.HeaderTimestamp, identity.HeaderSignature}

// IdentityWebhookHandler receives signed identity provider events
type IdentityWebhookHandler struct {
	webhookUsecase *usecases.IdentityWebhookUsecase
}

func NewIdentityWebhookHandler(webhookUsecase *usecases.IdentityWebhookUsecase) *IdentityWebhookHandler {
	return &IdentityWebhookHandler{webhookUsecase: webhookUsecase}
}

// HandleWebhook verifies the raw body against the svix headers before touching it.
// POST /api/v1/webhooks/identity
func (h *IdentityWebhookHandler) HandleWebhook(c *gin.Context) {
	if !h.webhookUsecase.Configured() {
		fail(c, domainerrors.NotConfigured("Webhook secret not configured"))
		return
	}
	for _, name := range webhookHeaders {
		if c.GetHeader(name) == "" {
			fail(c, domainerrors.BadRequest("Missing svix headers"))
			return
		}
	}

	payload, err := c.GetRawData()
	if err != nil {
		invalid(c, "Invalid webhook payload", err)
		return
	}

	result, err := h.webhookUsecase.Handle(c.Request.Context(), payload, c.Request.Header)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
