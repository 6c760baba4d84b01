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

// WorkerUsecase handles service provider accounts
type WorkerUsecase struct {
	workerRepo repositories.WorkerRepository
	uow        repositories.UnitOfWork
}

// NewWorkerUsecase creates a new worker usecase
func NewWorkerUsecase(workerRepo repositories.WorkerRepository, uow repositories.UnitOfWork) *WorkerUsecase {
	return &WorkerUsecase{
		workerRepo: workerRepo,
		uow:        uow,
	}
}

func (u *WorkerUsecase) Create(ctx context.Context, input *entities.CreateWorkerInput) (*entities.Worker, error) {
	worker := &entities.Worker{
		ID:          utils.IDOrNew(input.ID),
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		IsAvailable: input.IsAvailable,
	}
	if input.Password != "" {
		hash, err := crypto.HashPassword(input.Password)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		worker.PasswordHash = hash
	}
	if input.ProfilePicture != nil {
		worker.ProfilePicture.SetValid(*input.ProfilePicture)
	}
	if input.Location != nil {
		worker.Location.SetValid(*input.Location)
	}
	if input.Description != nil {
		worker.Description.SetValid(*input.Description)
	}

	if err := u.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (u *WorkerUsecase) List(ctx context.Context) ([]*entities.Worker, error) {
	return u.workerRepo.List(ctx)
}

func (u *WorkerUsecase) GetByID(ctx context.Context, id string) (*entities.Worker, error) {
	worker, err := u.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, workerLookupError(err)
	}
	return worker, nil
}

func (u *WorkerUsecase) GetByEmail(ctx context.Context, email string) (*entities.Worker, error) {
	worker, err := u.workerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, workerLookupError(err)
	}
	return worker, nil
}

// ListBySpecialization returns the workers declaring category, case-insensitively.
func (u *WorkerUsecase) ListBySpecialization(ctx context.Context, category string) ([]*entities.Worker, error) {
	return u.workerRepo.ListBySpecialization(ctx, category)
}

func (u *WorkerUsecase) Update(ctx context.Context, id string, input *entities.UpdateWorkerInput) (*entities.Worker, error) {
	if input.Empty() {
		return nil, domainerrors.BadRequest("No fields to update")
	}

	var worker *entities.Worker
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		worker, err = u.workerRepo.GetByID(ctx, id)
		if err != nil {
			return workerLookupError(err)
		}

		if input.FullName != nil {
			worker.FullName = *input.FullName
		}
		if input.Email != nil {
			worker.Email = *input.Email
		}
		if input.PhoneNumber != nil {
			worker.PhoneNumber = *input.PhoneNumber
		}
		if input.Password != nil {
			hash, err := crypto.HashPassword(*input.Password)
			if err != nil {
				return domainerrors.InternalError(err)
			}
			worker.PasswordHash = hash
		}
		if input.ProfilePicture != nil {
			worker.ProfilePicture.SetValid(*input.ProfilePicture)
		}
		if input.Location != nil {
			worker.Location.SetValid(*input.Location)
		}
		if input.Description != nil {
			worker.Description.SetValid(*input.Description)
		}
		if input.IsAvailable != nil {
			worker.IsAvailable = *input.IsAvailable
		}

		return u.workerRepo.Update(ctx, worker)
	})
	if err != nil {
		return nil, err
	}
	return worker, nil
}

// SetAvailability is the go-live toggle.
func (u *WorkerUsecase) SetAvailability(ctx context.Context, id string, available bool) (*entities.Worker, error) {
	if err := u.workerRepo.SetAvailability(ctx, id, available); err != nil {
		return nil, workerLookupError(err)
	}
	return u.GetByID(ctx, id)
}

func (u *WorkerUsecase) Delete(ctx context.Context, id string) (*entities.Worker, error) {
	var worker *entities.Worker
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		worker, err = u.workerRepo.GetByID(ctx, id)
		if err != nil {
			return workerLookupError(err)
		}
		if err := u.workerRepo.Delete(ctx, id); err != nil {
			return workerLookupError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return worker, nil
}

func workerLookupError(err error) error {
	var appErr *domainerrors.AppError
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Worker not found")
	case errors.Is(err, domainerrors.ErrConflict):
		return domainerrors.Conflict("Worker is still referenced by other records")
	}
	return err
}
