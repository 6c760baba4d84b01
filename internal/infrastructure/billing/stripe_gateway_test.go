package billing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
)

type fakeStripe struct {
	mu       sync.Mutex
	requests map[string]url.Values
	search   string
}

func newFakeStripe(t *testing.T) (*fakeStripe, *StripeGateway) {
	t.Helper()
	f := &fakeStripe{requests: map[string]url.Values{}}
	f.search = `{"object":"search_result","url":"/v1/subscriptions/search","has_more":false,"data":[
		{"id":"sub_1","object":"subscription","status":"active","current_period_end":1767225600,
		 "items":{"object":"list","data":[{"id":"si_1","object":"subscription_item","price":{"id":"price_1","object":"price","unit_amount":49900}}]}}
	]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		f.mu.Lock()
		f.requests[r.Method+" "+r.URL.Path] = r.Form
		search := f.search
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/checkout/sessions":
			if r.Form.Get("customer_email") == "declined@example.com" {
				w.WriteHeader(http.StatusPaymentRequired)
				_, _ = w.Write([]byte(`{"error":{"type":"card_error","message":"Your card was declined."}}`))
				return
			}
			_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/cs_test_1"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/subscriptions/search":
			_, _ = w.Write([]byte(search))
		case r.Method == http.MethodPost && r.URL.Path == "/v1/subscriptions/sub_1":
			_, _ = w.Write([]byte(`{"id":"sub_1","object":"subscription","status":"active","cancel_at_period_end":true,"current_period_end":1767225600}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such subscription"}}`))
		}
	}))
	t.Cleanup(srv.Close)

	return f, NewStripeGatewayWithBackend("sk_test_123", srv.URL)
}

func (f *fakeStripe) form(key string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[key]
}

func TestStripeGateway_CreatePaymentSession(t *testing.T) {
	f, g := newFakeStripe(t)

	s, err := g.CreatePaymentSession(context.Background(), entities.PaymentSessionRequest{
		AmountMinor:   100050,
		Currency:      "inr",
		ServiceName:   "Wall Painting",
		Description:   "Payment for Wall Painting service",
		CustomerEmail: "asha@example.com",
		Metadata:      map[string]string{"customerId": "user_1", "serviceName": "Wall Painting", "amount": "1000.5"},
		SuccessURL:    "http://localhost:3000/booking/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     "http://localhost:3000/booking/services?service=Wall+Painting&canceled=true",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", s.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/cs_test_1", s.URL)

	form := f.form("POST /v1/checkout/sessions")
	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "100050", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "inr", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Wall Painting", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "Payment for Wall Painting service", form.Get("line_items[0][price_data][product_data][description]"))
	assert.Equal(t, "http://localhost:3000/booking/payment-success?session_id={CHECKOUT_SESSION_ID}", form.Get("success_url"))
	assert.Equal(t, "http://localhost:3000/booking/services?service=Wall+Painting&canceled=true", form.Get("cancel_url"))
	assert.Equal(t, "1", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "user_1", form.Get("metadata[customerId]"))
	assert.Equal(t, "1000.5", form.Get("metadata[amount]"))
	assert.Equal(t, "asha@example.com", form.Get("customer_email"))
}

func TestStripeGateway_CreatePaymentSession_ProviderError(t *testing.T) {
	_, g := newFakeStripe(t)

	_, err := g.CreatePaymentSession(context.Background(), entities.PaymentSessionRequest{
		AmountMinor:   100,
		Currency:      "inr",
		ServiceName:   "x",
		CustomerEmail: "declined@example.com",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrProvider)

	var upstream *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Your card was declined.", upstream.Message)
}

func TestStripeGateway_CreateSubscriptionSession(t *testing.T) {
	f, g := newFakeStripe(t)

	s, err := g.CreateSubscriptionSession(context.Background(), entities.SubscriptionSessionRequest{
		PriceID:    "price_pro",
		Metadata:   map[string]string{"workerId": "w1"},
		SuccessURL: "http://localhost:3000/worker/dashboard?success=true&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "http://localhost:3000/worker/dashboard?canceled=true",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", s.ID)

	form := f.form("POST /v1/checkout/sessions")
	assert.Equal(t, "subscription", form.Get("mode"))
	assert.Equal(t, "price_pro", form.Get("line_items[0][price]"))
	assert.Equal(t, "w1", form.Get("metadata[workerId]"))
	assert.Equal(t, "w1", form.Get("subscription_data[metadata][workerId]"))
	assert.Equal(t, "http://localhost:3000/worker/dashboard?success=true&session_id={CHECKOUT_SESSION_ID}", form.Get("success_url"))
	assert.Equal(t, "http://localhost:3000/worker/dashboard?canceled=true", form.Get("cancel_url"))
}

func TestStripeGateway_FindSubscriptionByWorker(t *testing.T) {
	f, g := newFakeStripe(t)

	sub, err := g.FindSubscriptionByWorker(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "sub_1", sub.ID)
	assert.Equal(t, "active", sub.Status)
	assert.Equal(t, int64(1767225600), sub.CurrentPeriodEnd)
	assert.Equal(t, int64(49900), sub.Amount)

	form := f.form("GET /v1/subscriptions/search")
	assert.Equal(t, "metadata['workerId']:'w1'", form.Get("query"))
	assert.Equal(t, "1", form.Get("limit"))

	f.mu.Lock()
	f.search = `{"object":"search_result","url":"/v1/subscriptions/search","has_more":false,"data":[]}`
	f.mu.Unlock()

	_, err = g.FindSubscriptionByWorker(context.Background(), "w2")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestStripeGateway_CancelSubscriptionAtPeriodEnd(t *testing.T) {
	f, g := newFakeStripe(t)

	sub, err := g.CancelSubscriptionAtPeriodEnd(context.Background(), "sub_1")
	require.NoError(t, err)
	assert.True(t, sub.CancelAtPeriodEnd)
	assert.Equal(t, "active", sub.Status)
	assert.Equal(t, int64(0), sub.Amount)
	assert.Equal(t, "true", f.form("POST /v1/subscriptions/sub_1").Get("cancel_at_period_end"))

	_, err = g.CancelSubscriptionAtPeriodEnd(context.Background(), "sub_missing")
	require.ErrorIs(t, err, domainerrors.ErrProvider)
}

func TestEscapeQuery(t *testing.T) {
	assert.Equal(t, "x", escapeQuery("x"))
	assert.Equal(t, `a\'b`, escapeQuery("a'b"))
}
