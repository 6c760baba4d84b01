package repositories

import (
	"context"

	"gorm.io/gorm"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/infrastructure/models"
)

type SpecializationRepository struct {
	db *gorm.DB
}

func NewSpecializationRepository(db *gorm.DB) *SpecializationRepository {
	return &SpecializationRepository{db: db}
}

func (r *SpecializationRepository) Create(ctx context.Context, s *entities.Specialization) error {
	m := &models.Specialization{
		ID:        s.ID,
		WorkerID:  s.WorkerID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateErr(err)
	}
	s.CreatedAt = m.CreatedAt
	return nil
}

func (r *SpecializationRepository) GetByID(ctx context.Context, id string) (*entities.Specialization, error) {
	var m models.Specialization
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return specializationToEntity(&m), nil
}

func (r *SpecializationRepository) List(ctx context.Context) ([]*entities.Specialization, error) {
	return r.find(GetDB(ctx, r.db))
}

func (r *SpecializationRepository) ListByWorker(ctx context.Context, workerID string) ([]*entities.Specialization, error) {
	return r.find(GetDB(ctx, r.db).Where("worker_id = ?", workerID))
}

func (r *SpecializationRepository) UpdateName(ctx context.Context, id, name string) error {
	result := GetDB(ctx, r.db).Model(&models.Specialization{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *SpecializationRepository) Delete(ctx context.Context, id string) error {
	result := GetDB(ctx, r.db).Delete(&models.Specialization{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *SpecializationRepository) find(query *gorm.DB) ([]*entities.Specialization, error) {
	var ms []models.Specialization
	if err := query.Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Specialization, 0, len(ms))
	for i := range ms {
		out = append(out, specializationToEntity(&ms[i]))
	}
	return out, nil
}

func specializationToEntity(m *models.Specialization) *entities.Specialization {
	return &entities.Specialization{
		ID:        m.ID,
		WorkerID:  m.WorkerID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}
