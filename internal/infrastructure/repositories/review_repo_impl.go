package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/infrastructure/models"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	m := &models.Review{
		ID:        review.ID,
		OrderID:   review.OrderID,
		UserID:    review.UserID,
		WorkerID:  review.WorkerID,
		Rating:    review.Rating,
		Comment:   review.Comment.Ptr(),
		CreatedAt: review.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateErr(err)
	}
	review.CreatedAt = m.CreatedAt
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	var m models.Review
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return reviewToEntity(&m), nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]*entities.Review, error) {
	return r.find(GetDB(ctx, r.db))
}

func (r *ReviewRepository) ListByOrder(ctx context.Context, orderID string) ([]*entities.Review, error) {
	return r.find(GetDB(ctx, r.db).Where("order_id = ?", orderID))
}

func (r *ReviewRepository) ListByWorker(ctx context.Context, workerID string) ([]*entities.Review, error) {
	return r.find(GetDB(ctx, r.db).Where("worker_id = ?", workerID))
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	result := GetDB(ctx, r.db).Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) find(query *gorm.DB) ([]*entities.Review, error) {
	var ms []models.Review
	if err := query.Order("created_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Review, 0, len(ms))
	for i := range ms {
		out = append(out, reviewToEntity(&ms[i]))
	}
	return out, nil
}

func reviewToEntity(m *models.Review) *entities.Review {
	return &entities.Review{
		ID:        m.ID,
		OrderID:   m.OrderID,
		UserID:    m.UserID,
		WorkerID:  m.WorkerID,
		Rating:    m.Rating,
		Comment:   null.StringFromPtr(m.Comment),
		CreatedAt: m.CreatedAt,
	}
}
