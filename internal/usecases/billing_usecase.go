package usecases

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"homeservice.backend/internal/config"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/pkg/logger"
)

const unknownCustomer = "unknown"

// BillingUsecase opens hosted checkouts and manages worker subscriptions
type BillingUsecase struct {
	gateway BillingGateway
	cfg     config.BillingConfig
}

// NewBillingUsecase creates the usecase. A nil gateway means billing is not configured.
func NewBillingUsecase(gateway BillingGateway, cfg config.BillingConfig) *BillingUsecase {
	return &BillingUsecase{
		gateway: gateway,
		cfg:     cfg,
	}
}

// ToMinorUnits converts a major-unit amount to the provider's integer unit, rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (u *BillingUsecase) Config() entities.BillingConfig {
	return entities.BillingConfig{
		PublishableKey: u.cfg.PublishableKey,
		Configured:     u.gateway != nil,
	}
}

func (u *BillingUsecase) CreatePaymentSession(ctx context.Context, input *entities.CreatePaymentSessionInput) (*entities.CheckoutSession, error) {
	if u.gateway == nil {
		return nil, domainerrors.NotConfigured("Payment service not configured")
	}
	if input.Amount <= 0 || strings.TrimSpace(input.ServiceName) == "" || strings.TrimSpace(input.CustomerEmail) == "" {
		return nil, domainerrors.BadRequest("Missing required fields")
	}

	customerID := input.CustomerID
	if customerID == "" {
		customerID = unknownCustomer
	}

	session, err := u.gateway.CreatePaymentSession(ctx, entities.PaymentSessionRequest{
		AmountMinor:   ToMinorUnits(input.Amount),
		Currency:      u.cfg.Currency,
		ServiceName:   input.ServiceName,
		Description:   "Payment for " + input.ServiceName + " service",
		CustomerEmail: input.CustomerEmail,
		Metadata: map[string]string{
			"customerId":  customerID,
			"serviceName": input.ServiceName,
			"amount":      strconv.FormatFloat(input.Amount, 'f', -1, 64),
		},
		SuccessURL: u.cfg.AppBaseURL + "/booking/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  u.cfg.AppBaseURL + "/booking/services?service=" + url.QueryEscape(input.ServiceName) + "&canceled=true",
	})
	if err != nil {
		logger.Error(ctx, "Failed to create payment session", zap.Error(err))
		return nil, domainerrors.ProviderError("Payment failed: "+providerMessage(err), err)
	}
	return session, nil
}

func (u *BillingUsecase) CreateSubscriptionSession(ctx context.Context, input *entities.CreateSubscriptionSessionInput) (*entities.CheckoutSession, error) {
	if u.gateway == nil {
		return nil, domainerrors.NotConfigured("Payment service not configured")
	}
	if strings.TrimSpace(input.PlanID) == "" || strings.TrimSpace(input.WorkerID) == "" {
		return nil, domainerrors.BadRequest("Missing required fields")
	}

	session, err := u.gateway.CreateSubscriptionSession(ctx, entities.SubscriptionSessionRequest{
		PriceID:    input.PlanID,
		Metadata:   map[string]string{"workerId": input.WorkerID},
		SuccessURL: u.cfg.AppBaseURL + "/worker/dashboard?success=true&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  u.cfg.AppBaseURL + "/worker/dashboard?canceled=true",
	})
	if err != nil {
		logger.Error(ctx, "Failed to create subscription session", zap.String("worker_id", input.WorkerID), zap.Error(err))
		return nil, domainerrors.ProviderError("Failed to create subscription session", err)
	}
	return session, nil
}

// GetSubscription returns the single subscription tagged with workerID.
func (u *BillingUsecase) GetSubscription(ctx context.Context, workerID string) (*entities.Subscription, error) {
	if u.gateway == nil {
		return nil, domainerrors.NotConfigured("Payment service not configured")
	}
	if strings.TrimSpace(workerID) == "" {
		return nil, domainerrors.BadRequest("Missing required fields")
	}

	sub, err := u.gateway.FindSubscriptionByWorker(ctx, workerID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.NotFound("No subscription found")
	}
	if err != nil {
		logger.Error(ctx, "Failed to fetch subscription", zap.String("worker_id", workerID), zap.Error(err))
		return nil, domainerrors.ProviderError("Failed to fetch subscription", err)
	}
	return sub, nil
}

func (u *BillingUsecase) CancelSubscription(ctx context.Context, input *entities.CancelSubscriptionInput) (*entities.Subscription, error) {
	if u.gateway == nil {
		return nil, domainerrors.NotConfigured("Payment service not configured")
	}
	if strings.TrimSpace(input.SubscriptionID) == "" {
		return nil, domainerrors.BadRequest("Missing required fields")
	}

	sub, err := u.gateway.CancelSubscriptionAtPeriodEnd(ctx, input.SubscriptionID)
	if err != nil {
		logger.Error(ctx, "Failed to cancel subscription", zap.String("subscription_id", input.SubscriptionID), zap.Error(err))
		return nil, domainerrors.ProviderError("Failed to cancel subscription", err)
	}
	return sub, nil
}

func providerMessage(err error) string {
	var upstream *domainerrors.UpstreamError
	if errors.As(err, &upstream) && upstream.Message != "" {
		return upstream.Message
	}
	return err.Error()
}
