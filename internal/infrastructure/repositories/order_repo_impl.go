package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/infrastructure/models"
	"homeservice.backend/pkg/utils"
)

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	m := &models.Order{
		ID:              order.ID,
		UserID:          order.UserID,
		WorkerID:        order.WorkerID,
		Status:          string(order.Status),
		Description:     order.Description.Ptr(),
		BookedFor:       order.BookedFor.Ptr(),
		DurationMinutes: order.DurationMinutes.Ptr(),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateErr(err)
	}
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	var m models.Order
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return orderToEntity(&m), nil
}

func (r *OrderRepository) List(ctx context.Context, page utils.PaginationParams) ([]*entities.Order, int64, error) {
	var total int64
	query := GetDB(ctx, r.db).Model(&models.Order{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page.Enabled() {
		query = query.Limit(page.Limit).Offset(page.CalculateOffset())
	}
	orders, err := r.find(query)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	return r.find(GetDB(ctx, r.db).Where("user_id = ?", userID))
}

func (r *OrderRepository) ListByWorker(ctx context.Context, workerID string) ([]*entities.Order, error) {
	return r.find(GetDB(ctx, r.db).Where("worker_id = ?", workerID))
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	result := GetDB(ctx, r.db).Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	result := GetDB(ctx, r.db).Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) find(query *gorm.DB) ([]*entities.Order, error) {
	var ms []models.Order
	if err := query.Order("created_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		out = append(out, orderToEntity(&ms[i]))
	}
	return out, nil
}

func orderToEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		WorkerID:        m.WorkerID,
		Status:          entities.OrderStatus(m.Status),
		Description:     null.StringFromPtr(m.Description),
		BookedFor:       null.TimeFromPtr(m.BookedFor),
		DurationMinutes: null.IntFromPtr(m.DurationMinutes),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
