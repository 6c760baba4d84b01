package usecases

import (
	"context"
	"errors"

	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/domain/repositories"
	"homeservice.backend/pkg/crypto"
	"homeservice.backend/pkg/utils"
)

// UserUsecase handles customer accounts
type UserUsecase struct {
	userRepo repositories.UserRepository
	uow      repositories.UnitOfWork
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, uow repositories.UnitOfWork) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		uow:      uow,
	}
}

// Create stores a new user. The id is generated when the caller leaves it empty.
func (u *UserUsecase) Create(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	user := &entities.User{
		ID:          utils.IDOrNew(input.ID),
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}
	if input.Password != "" {
		hash, err := crypto.HashPassword(input.Password)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		user.PasswordHash = hash
	}
	applyUserProfile(user, input.Location, input.Address, input.City, input.State, input.Country, input.ZipCode, input.AutoLocation)
	if input.Lat != nil {
		user.Lat.SetValid(*input.Lat)
	}
	if input.Lng != nil {
		user.Lng.SetValid(*input.Lng)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) List(ctx context.Context, page utils.PaginationParams) ([]*entities.User, utils.PaginationMeta, error) {
	users, total, err := u.userRepo.List(ctx, page)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return users, utils.CalculateMeta(total, page.Page, page.Limit), nil
}

func (u *UserUsecase) GetByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, userLookupError(err)
	}
	return user, nil
}

func (u *UserUsecase) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, userLookupError(err)
	}
	return user, nil
}

// Update applies the non-nil fields of input and leaves everything else untouched.
func (u *UserUsecase) Update(ctx context.Context, id string, input *entities.UpdateUserInput) (*entities.User, error) {
	if input.Empty() {
		return nil, domainerrors.BadRequest("No fields to update")
	}

	var user *entities.User
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		user, err = u.userRepo.GetByID(ctx, id)
		if err != nil {
			return userLookupError(err)
		}

		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.PhoneNumber != nil {
			user.PhoneNumber = *input.PhoneNumber
		}
		if input.Password != nil {
			hash, err := crypto.HashPassword(*input.Password)
			if err != nil {
				return domainerrors.InternalError(err)
			}
			user.PasswordHash = hash
		}
		applyUserProfile(user, input.Location, input.Address, input.City, input.State, input.Country, input.ZipCode, input.AutoLocation)
		if input.Lat != nil {
			user.Lat.SetValid(*input.Lat)
		}
		if input.Lng != nil {
			user.Lng.SetValid(*input.Lng)
		}

		return u.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and returns the row as it was.
func (u *UserUsecase) Delete(ctx context.Context, id string) (*entities.User, error) {
	var user *entities.User
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		user, err = u.userRepo.GetByID(ctx, id)
		if err != nil {
			return userLookupError(err)
		}
		if err := u.userRepo.Delete(ctx, id); err != nil {
			return userLookupError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func applyUserProfile(user *entities.User, location, address, city, state, country, zip, auto *string) {
	if location != nil {
		user.Location.SetValid(*location)
	}
	if address != nil {
		user.Address.SetValid(*address)
	}
	if city != nil {
		user.City.SetValid(*city)
	}
	if state != nil {
		user.State.SetValid(*state)
	}
	if country != nil {
		user.Country.SetValid(*country)
	}
	if zip != nil {
		user.ZipCode.SetValid(*zip)
	}
	if auto != nil {
		user.AutoLocation.SetValid(*auto)
	}
}

func userLookupError(err error) error {
	var appErr *domainerrors.AppError
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("User not found")
	case errors.Is(err, domainerrors.ErrConflict):
		return domainerrors.Conflict("User is still referenced by other records")
	}
	return err
}
