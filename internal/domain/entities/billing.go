package entities

// CreatePaymentSessionInput starts a one-time hosted checkout
type CreatePaymentSessionInput struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	ServiceName   string  `json:"serviceName" binding:"required"`
	CustomerEmail string  `json:"customerEmail" binding:"required"`
	CustomerID    string  `json:"customerId"`
}

// CreateSubscriptionSessionInput starts a subscription checkout for a worker
type CreateSubscriptionSessionInput struct {
	PlanID   string `json:"planId" binding:"required"`
	WorkerID string `json:"workerId" binding:"required"`
}

type CancelSubscriptionInput struct {
	SubscriptionID string `json:"subscriptionId" binding:"required"`
}

// PaymentSessionRequest is what the billing gateway needs to open a payment checkout.
type PaymentSessionRequest struct {
	AmountMinor   int64
	Currency      string
	ServiceName   string
	Description   string
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// SubscriptionSessionRequest is what the billing gateway needs to open a subscription checkout.
type SubscriptionSessionRequest struct {
	PriceID    string
	Metadata   map[string]string
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is a provider hosted checkout flow
type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url,omitempty"`
}

// Subscription is the normalized provider subscription
type Subscription struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	CurrentPeriodEnd  int64  `json:"current_period_end"`
	Amount            int64  `json:"amount"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
}

// BillingConfig is the public billing configuration for the front end
type BillingConfig struct {
	PublishableKey string `json:"publishableKey"`
	Configured     bool   `json:"configured"`
}
