package usecases

import (
	"context"
	"errors"
	"strings"

	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/domain/repositories"
	"homeservice.backend/pkg/crypto"
	"homeservice.backend/pkg/utils"
)

// TransactionUsecase records gateway payments against orders
type TransactionUsecase struct {
	txRepo          repositories.TransactionRepository
	orderRepo       repositories.OrderRepository
	userRepo        repositories.UserRepository
	uow             repositories.UnitOfWork
	signatureSecret string
}

func NewTransactionUsecase(
	txRepo repositories.TransactionRepository,
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	signatureSecret string,
) *TransactionUsecase {
	return &TransactionUsecase{
		txRepo:          txRepo,
		orderRepo:       orderRepo,
		userRepo:        userRepo,
		uow:             uow,
		signatureSecret: signatureSecret,
	}
}

// Create stores a payment record. When a signing secret is configured and the
// record carries both a payment id and a signature, the signature must verify.
func (u *TransactionUsecase) Create(ctx context.Context, input *entities.CreateTransactionInput) (*entities.Transaction, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerrors.BadRequest("Invalid transaction data")
	}
	if _, err := u.orderRepo.GetByID(ctx, input.OrderID); err != nil {
		return nil, orderLookupError(err)
	}
	if u.signatureSecret != "" && input.PaymentID != "" && input.Signature != "" {
		if !crypto.VerifyPaymentSignature(input.OrderID, input.PaymentID, input.Signature, u.signatureSecret) {
			return nil, domainerrors.InvalidSignature("Invalid payment signature")
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = entities.DefaultCurrency
	}

	tx := &entities.Transaction{
		ID:       utils.IDOrNew(input.ID),
		OrderID:  input.OrderID,
		Amount:   input.Amount.Round(2),
		Currency: currency,
		Status:   input.Status,
		Method:   input.Method,
	}
	if input.PaymentID != "" {
		tx.PaymentID.SetValid(input.PaymentID)
	}
	if input.Signature != "" {
		tx.Signature.SetValid(input.Signature)
	}
	if input.Email != "" {
		tx.Email.SetValid(input.Email)
	}
	if input.Contact != "" {
		tx.Contact.SetValid(input.Contact)
	}

	if err := u.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (u *TransactionUsecase) List(ctx context.Context) ([]*entities.Transaction, error) {
	return u.txRepo.List(ctx)
}

func (u *TransactionUsecase) GetByID(ctx context.Context, id string) (*entities.Transaction, error) {
	tx, err := u.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, transactionLookupError(err)
	}
	return tx, nil
}

func (u *TransactionUsecase) ListByOrder(ctx context.Context, orderID string) ([]*entities.Transaction, error) {
	return u.txRepo.ListByOrder(ctx, orderID)
}

// ListByUser returns the transactions across every order the user booked.
func (u *TransactionUsecase) ListByUser(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, userLookupError(err)
	}
	return u.txRepo.ListByUser(ctx, userID)
}

func (u *TransactionUsecase) Delete(ctx context.Context, id string) (*entities.Transaction, error) {
	var tx *entities.Transaction
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		tx, err = u.txRepo.GetByID(ctx, id)
		if err != nil {
			return transactionLookupError(err)
		}
		if err := u.txRepo.Delete(ctx, id); err != nil {
			return transactionLookupError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func transactionLookupError(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Transaction not found")
	}
	return err
}
