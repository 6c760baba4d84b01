package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusCreated    PaymentStatus = "created"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusFailed     PaymentStatus = "failed"
)

var PaymentStatuses = []PaymentStatus{
	PaymentStatusCreated,
	PaymentStatusAuthorized,
	PaymentStatusCaptured,
	PaymentStatusFailed,
}

// PaymentMethod represents how a transaction was paid
type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodCard,
	PaymentMethodUPI,
	PaymentMethodNetbanking,
	PaymentMethodWallet,
}

// DefaultCurrency applies when a transaction is recorded without one.
const DefaultCurrency = "INR"

// Transaction is a payment record for an order
type Transaction struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	PaymentID null.String     `json:"paymentId"`
	Signature null.String     `json:"signature"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    PaymentStatus   `json:"status"`
	Method    PaymentMethod   `json:"method"`
	Email     null.String     `json:"email"`
	Contact   null.String     `json:"contact"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CreateTransactionInput records a gateway payment against an order
type CreateTransactionInput struct {
	ID        string          `json:"id" binding:"omitempty,max=64"`
	OrderID   string          `json:"orderId" binding:"required,max=64"`
	PaymentID string          `json:"paymentId" binding:"omitempty,max=128"`
	Signature string          `json:"signature" binding:"omitempty,max=256"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency" binding:"omitempty,len=3"`
	Status    PaymentStatus   `json:"status" binding:"required,oneof=created authorized captured failed"`
	Method    PaymentMethod   `json:"method" binding:"required,oneof=card upi netbanking wallet"`
	Email     string          `json:"email" binding:"omitempty,email"`
	Contact   string          `json:"contact" binding:"omitempty,max=20"`
}
