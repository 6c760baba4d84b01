package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/infrastructure/models"
)

// TransactionRepository implements transaction data operations
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	m := &models.Transaction{
		ID:        tx.ID,
		OrderID:   tx.OrderID,
		PaymentID: tx.PaymentID.Ptr(),
		Signature: tx.Signature.Ptr(),
		Amount:    tx.Amount,
		Currency:  tx.Currency,
		Status:    string(tx.Status),
		Method:    string(tx.Method),
		Email:     tx.Email.Ptr(),
		Contact:   tx.Contact.Ptr(),
		CreatedAt: tx.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateErr(err)
	}
	tx.CreatedAt = m.CreatedAt
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entities.Transaction, error) {
	var m models.Transaction
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return transactionToEntity(&m), nil
}

func (r *TransactionRepository) List(ctx context.Context) ([]*entities.Transaction, error) {
	return r.find(GetDB(ctx, r.db))
}

func (r *TransactionRepository) ListByOrder(ctx context.Context, orderID string) ([]*entities.Transaction, error) {
	return r.find(GetDB(ctx, r.db).Where("order_id = ?", orderID))
}

// ListByUser returns transactions across every order placed by userID.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	db := GetDB(ctx, r.db)
	return r.find(db.Where("order_id IN (?)", db.Model(&models.Order{}).Select("id").Where("user_id = ?", userID)))
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	result := GetDB(ctx, r.db).Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) find(query *gorm.DB) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	if err := query.Order("created_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		out = append(out, transactionToEntity(&ms[i]))
	}
	return out, nil
}

func transactionToEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:        m.ID,
		OrderID:   m.OrderID,
		PaymentID: null.StringFromPtr(m.PaymentID),
		Signature: null.StringFromPtr(m.Signature),
		Amount:    m.Amount,
		Currency:  m.Currency,
		Status:    entities.PaymentStatus(m.Status),
		Method:    entities.PaymentMethod(m.Method),
		Email:     null.StringFromPtr(m.Email),
		Contact:   null.StringFromPtr(m.Contact),
		CreatedAt: m.CreatedAt,
	}
}
