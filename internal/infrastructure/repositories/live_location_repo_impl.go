package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/infrastructure/models"
)

// LiveLocationRepository stores worker coordinate samples in workers_location
type LiveLocationRepository struct {
	db *gorm.DB
}

func NewLiveLocationRepository(db *gorm.DB) *LiveLocationRepository {
	return &LiveLocationRepository{db: db}
}

func (r *LiveLocationRepository) Create(ctx context.Context, loc *entities.LiveLocation) error {
	m := &models.LiveLocation{
		ID:        loc.ID,
		WorkerID:  loc.WorkerID,
		Lat:       loc.Lat,
		Lng:       loc.Lng,
		CreatedAt: loc.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateErr(err)
	}
	loc.CreatedAt = m.CreatedAt
	return nil
}

func (r *LiveLocationRepository) GetByID(ctx context.Context, id string) (*entities.LiveLocation, error) {
	var m models.LiveLocation
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return liveLocationToEntity(&m), nil
}

func (r *LiveLocationRepository) List(ctx context.Context) ([]*entities.LiveLocation, error) {
	return r.find(GetDB(ctx, r.db))
}

func (r *LiveLocationRepository) ListByWorker(ctx context.Context, workerID string) ([]*entities.LiveLocation, error) {
	return r.find(GetDB(ctx, r.db).Where("worker_id = ?", workerID))
}

func (r *LiveLocationRepository) LatestByWorker(ctx context.Context, workerID string) (*entities.LiveLocation, error) {
	var m models.LiveLocation
	if err := GetDB(ctx, r.db).
		Where("worker_id = ?", workerID).
		Order("created_at DESC, id DESC").
		First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return liveLocationToEntity(&m), nil
}

func (r *LiveLocationRepository) Delete(ctx context.Context, id string) error {
	result := GetDB(ctx, r.db).Delete(&models.LiveLocation{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteOlderThan prunes samples recorded before cutoff and reports how many were removed.
func (r *LiveLocationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := GetDB(ctx, r.db).Where("created_at < ?", cutoff).Delete(&models.LiveLocation{})
	return result.RowsAffected, result.Error
}

func (r *LiveLocationRepository) find(query *gorm.DB) ([]*entities.LiveLocation, error) {
	var ms []models.LiveLocation
	if err := query.Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.LiveLocation, 0, len(ms))
	for i := range ms {
		out = append(out, liveLocationToEntity(&ms[i]))
	}
	return out, nil
}

func liveLocationToEntity(m *models.LiveLocation) *entities.LiveLocation {
	return &entities.LiveLocation{
		ID:        m.ID,
		WorkerID:  m.WorkerID,
		Lat:       m.Lat,
		Lng:       m.Lng,
		CreatedAt: m.CreatedAt,
	}
}
