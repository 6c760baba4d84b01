package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/infrastructure/models"
)

// WorkerRepository implements worker data operations
type WorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) Create(ctx context.Context, worker *entities.Worker) error {
	m := r.toModel(worker)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateErr(err)
	}
	worker.CreatedAt = m.CreatedAt
	worker.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id string) (*entities.Worker, error) {
	var m models.Worker
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return r.toEntity(&m), nil
}

func (r *WorkerRepository) GetByEmail(ctx context.Context, email string) (*entities.Worker, error) {
	var m models.Worker
	if err := GetDB(ctx, r.db).Where("LOWER(email) = LOWER(?)", email).Order("created_at ASC").First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return r.toEntity(&m), nil
}

func (r *WorkerRepository) List(ctx context.Context) ([]*entities.Worker, error) {
	var ms []models.Worker
	if err := GetDB(ctx, r.db).Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListBySpecialization returns workers declaring category, with their specializations attached.
func (r *WorkerRepository) ListBySpecialization(ctx context.Context, category string) ([]*entities.Worker, error) {
	db := GetDB(ctx, r.db)

	var ms []models.Worker
	if err := db.Model(&models.Worker{}).
		Where("id IN (?)", db.Model(&models.Specialization{}).Select("worker_id").Where("LOWER(name) = LOWER(?)", category)).
		Order("created_at ASC, id ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	workers := r.toEntities(ms)
	if len(workers) == 0 {
		return workers, nil
	}

	ids := make([]string, 0, len(workers))
	byID := make(map[string]*entities.Worker, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID)
		byID[w.ID] = w
	}

	var specs []models.Specialization
	if err := GetDB(ctx, r.db).Where("worker_id IN ?", ids).Order("created_at ASC").Find(&specs).Error; err != nil {
		return nil, err
	}
	for i := range specs {
		w := byID[specs[i].WorkerID]
		w.Specializations = append(w.Specializations, specializationToEntity(&specs[i]))
	}
	return workers, nil
}

func (r *WorkerRepository) Update(ctx context.Context, worker *entities.Worker) error {
	now := time.Now()
	updates := map[string]interface{}{
		"full_name":       worker.FullName,
		"email":           worker.Email,
		"phone_number":    worker.PhoneNumber,
		"password":        null.NewString(worker.PasswordHash, worker.PasswordHash != "").Ptr(),
		"profile_picture": worker.ProfilePicture.Ptr(),
		"location":        worker.Location.Ptr(),
		"description":     worker.Description.Ptr(),
		"is_available":    worker.IsAvailable,
		"updated_at":      now,
	}

	result := GetDB(ctx, r.db).Model(&models.Worker{}).Where("id = ?", worker.ID).Updates(updates)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	worker.UpdatedAt = now
	return nil
}

func (r *WorkerRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	result := GetDB(ctx, r.db).Model(&models.Worker{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_available": available,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *WorkerRepository) Delete(ctx context.Context, id string) error {
	result := GetDB(ctx, r.db).Delete(&models.Worker{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *WorkerRepository) toEntities(ms []models.Worker) []*entities.Worker {
	out := make([]*entities.Worker, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out
}

func (r *WorkerRepository) toEntity(m *models.Worker) *entities.Worker {
	w := &entities.Worker{
		ID:             m.ID,
		FullName:       m.FullName,
		Email:          m.Email,
		PhoneNumber:    m.PhoneNumber,
		ProfilePicture: null.StringFromPtr(m.ProfilePicture),
		Location:       null.StringFromPtr(m.Location),
		Description:    null.StringFromPtr(m.Description),
		IsAvailable:    m.IsAvailable,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.PasswordHash != nil {
		w.PasswordHash = *m.PasswordHash
	}
	return w
}

func (r *WorkerRepository) toModel(e *entities.Worker) *models.Worker {
	return &models.Worker{
		ID:             e.ID,
		FullName:       e.FullName,
		Email:          e.Email,
		PasswordHash:   null.NewString(e.PasswordHash, e.PasswordHash != "").Ptr(),
		PhoneNumber:    e.PhoneNumber,
		ProfilePicture: e.ProfilePicture.Ptr(),
		Location:       e.Location.Ptr(),
		Description:    e.Description.Ptr(),
		IsAvailable:    e.IsAvailable,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
