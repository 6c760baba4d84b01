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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateErr(err)
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets the oldest user registered with an email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("LOWER(email) = LOWER(?)", email).Order("created_at ASC").First(&m).Error; err != nil {
		return nil, translateErr(err)
	}
	return r.toEntity(&m), nil
}

// List lists users, oldest first. A zero limit returns every row.
func (r *UserRepository) List(ctx context.Context, page utils.PaginationParams) ([]*entities.User, int64, error) {
	var total int64
	query := GetDB(ctx, r.db).Model(&models.User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page.Enabled() {
		query = query.Limit(page.Limit).Offset(page.CalculateOffset())
	}

	var ms []models.User
	if err := query.Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, r.toEntity(&ms[i]))
	}
	return users, total, nil
}

// Update writes every mutable column of user
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	now := time.Now()
	updates := map[string]interface{}{
		"full_name":     user.FullName,
		"email":         user.Email,
		"phone_number":  user.PhoneNumber,
		"password":      null.NewString(user.PasswordHash, user.PasswordHash != "").Ptr(),
		"location":      user.Location.Ptr(),
		"address":       user.Address.Ptr(),
		"city":          user.City.Ptr(),
		"state":         user.State.Ptr(),
		"country":       user.Country.Ptr(),
		"zip_code":      user.ZipCode.Ptr(),
		"auto_location": user.AutoLocation.Ptr(),
		"lat":           user.Lat.Ptr(),
		"lng":           user.Lng.Ptr(),
		"updated_at":    now,
	}

	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	user.UpdatedAt = now
	return nil
}

// Delete removes a user row
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result := GetDB(ctx, r.db).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:           m.ID,
		FullName:     m.FullName,
		Email:        m.Email,
		PhoneNumber:  m.PhoneNumber,
		Location:     null.StringFromPtr(m.Location),
		Address:      null.StringFromPtr(m.Address),
		City:         null.StringFromPtr(m.City),
		State:        null.StringFromPtr(m.State),
		Country:      null.StringFromPtr(m.Country),
		ZipCode:      null.StringFromPtr(m.ZipCode),
		AutoLocation: null.StringFromPtr(m.AutoLocation),
		Lat:          null.Float64FromPtr(m.Lat),
		Lng:          null.Float64FromPtr(m.Lng),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.PasswordHash != nil {
		u.PasswordHash = *m.PasswordHash
	}
	return u
}

func (r *UserRepository) toModel(e *entities.User) *models.User {
	return &models.User{
		ID:           e.ID,
		FullName:     e.FullName,
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		PasswordHash: null.NewString(e.PasswordHash, e.PasswordHash != "").Ptr(),
		Location:     e.Location.Ptr(),
		Address:      e.Address.Ptr(),
		City:         e.City.Ptr(),
		State:        e.State.Ptr(),
		Country:      e.Country.Ptr(),
		ZipCode:      e.ZipCode.Ptr(),
		AutoLocation: e.AutoLocation.Ptr(),
		Lat:          e.Lat.Ptr(),
		Lng:          e.Lng.Ptr(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
