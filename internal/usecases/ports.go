package usecases

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/pkg/logger"
)

// EventPublisher pushes an event to every socket joined to room, on any process.
type EventPublisher interface {
	Publish(ctx context.Context, room, eventType string, payload interface{}) error
}

// BillingGateway is the hosted checkout provider.
type BillingGateway interface {
	CreatePaymentSession(ctx context.Context, req entities.PaymentSessionRequest) (*entities.CheckoutSession, error)
	CreateSubscriptionSession(ctx context.Context, req entities.SubscriptionSessionRequest) (*entities.CheckoutSession, error)
	FindSubscriptionByWorker(ctx context.Context, workerID string) (*entities.Subscription, error)
	CancelSubscriptionAtPeriodEnd(ctx context.Context, subscriptionID string) (*entities.Subscription, error)
}

// SignatureVerifier checks an inbound webhook body against its signature headers.
type SignatureVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

// publish is best effort: the row is already stored, so a relay failure is only logged.
func publish(ctx context.Context, p EventPublisher, room, eventType string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, room, eventType, payload); err != nil {
		logger.Warn(ctx, "Failed to publish realtime event",
			zap.String("room", room),
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}
