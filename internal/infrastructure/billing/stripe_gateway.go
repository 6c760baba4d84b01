package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
)

const providerName = "stripe"

// StripeGateway opens hosted checkout sessions and manages subscriptions
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway against the live Stripe API
func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, nil)}
}

// NewStripeGatewayWithBackend points the gateway at another API base URL.
func NewStripeGatewayWithBackend(secretKey, baseURL string) *StripeGateway {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(baseURL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return &StripeGateway{api: client.New(secretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})}
}

func (g *StripeGateway) CreatePaymentSession(ctx context.Context, req entities.PaymentSessionRequest) (*entities.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(req.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.ServiceName),
				},
				UnitAmount: stripe.Int64(req.AmountMinor),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:    stripe.String(req.SuccessURL),
		CancelURL:     stripe.String(req.CancelURL),
		CustomerEmail: stripe.String(req.CustomerEmail),
	}
	if req.Description != "" {
		params.LineItems[0].PriceData.ProductData.Description = stripe.String(req.Description)
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, wrapError(err)
	}
	return &entities.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// CreateSubscriptionSession tags both the session and the resulting subscription
// so the metadata survives renewals.
func (g *StripeGateway) CreateSubscriptionSession(ctx context.Context, req entities.SubscriptionSessionRequest) (*entities.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(req.PriceID),
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: req.Metadata,
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, wrapError(err)
	}
	return &entities.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// FindSubscriptionByWorker returns the first subscription tagged with workerID.
func (g *StripeGateway) FindSubscriptionByWorker(ctx context.Context, workerID string) (*entities.Subscription, error) {
	params := &stripe.SubscriptionSearchParams{}
	params.Query = fmt.Sprintf("metadata['workerId']:'%s'", escapeQuery(workerID))
	params.Limit = stripe.Int64(1)
	params.Context = ctx

	iter := g.api.Subscriptions.Search(params)
	if !iter.Next() {
		if err := iter.Err(); err != nil {
			return nil, wrapError(err)
		}
		return nil, domainerrors.ErrNotFound
	}
	return toSubscription(iter.Subscription()), nil
}

// CancelSubscriptionAtPeriodEnd keeps the subscription active until the current period ends.
func (g *StripeGateway) CancelSubscriptionAtPeriodEnd(ctx context.Context, subscriptionID string) (*entities.Subscription, error) {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	params.Context = ctx

	s, err := g.api.Subscriptions.Update(subscriptionID, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return toSubscription(s), nil
}

func toSubscription(s *stripe.Subscription) *entities.Subscription {
	out := &entities.Subscription{
		ID:                s.ID,
		Status:            string(s.Status),
		CurrentPeriodEnd:  s.CurrentPeriodEnd,
		CancelAtPeriodEnd: s.CancelAtPeriodEnd,
	}
	if s.Items != nil && len(s.Items.Data) > 0 && s.Items.Data[0].Price != nil {
		out.Amount = s.Items.Data[0].Price.UnitAmount
	}
	return out
}

func wrapError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return &domainerrors.UpstreamError{Provider: providerName, Message: stripeErr.Msg, Err: err}
	}
	return &domainerrors.UpstreamError{Provider: providerName, Message: err.Error(), Err: err}
}

func escapeQuery(v string) string {
	out := make([]rune, 0, len(v))
	for _, r := range v {
		if r == '\'' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
