package usecases

import (
	"context"
	"errors"
	"strings"

	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/domain/repositories"
	"homeservice.backend/pkg/utils"
)

// SpecializationUsecase manages the service categories a worker offers
type SpecializationUsecase struct {
	specRepo   repositories.SpecializationRepository
	workerRepo repositories.WorkerRepository
	uow        repositories.UnitOfWork
}

func NewSpecializationUsecase(
	specRepo repositories.SpecializationRepository,
	workerRepo repositories.WorkerRepository,
	uow repositories.UnitOfWork,
) *SpecializationUsecase {
	return &SpecializationUsecase{
		specRepo:   specRepo,
		workerRepo: workerRepo,
		uow:        uow,
	}
}

func (u *SpecializationUsecase) Create(ctx context.Context, input *entities.CreateSpecializationInput) (*entities.Specialization, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest("Invalid specialization data")
	}
	if _, err := u.workerRepo.GetByID(ctx, input.WorkerID); err != nil {
		return nil, workerLookupError(err)
	}

	spec := &entities.Specialization{
		ID:       utils.IDOrNew(input.ID),
		WorkerID: input.WorkerID,
		Name:     name,
	}
	if err := u.specRepo.Create(ctx, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (u *SpecializationUsecase) List(ctx context.Context) ([]*entities.Specialization, error) {
	return u.specRepo.List(ctx)
}

func (u *SpecializationUsecase) GetByID(ctx context.Context, id string) (*entities.Specialization, error) {
	spec, err := u.specRepo.GetByID(ctx, id)
	if err != nil {
		return nil, specializationLookupError(err)
	}
	return spec, nil
}

// ListByWorker is 404 for an unknown worker and empty for a worker with no categories.
func (u *SpecializationUsecase) ListByWorker(ctx context.Context, workerID string) ([]*entities.Specialization, error) {
	if _, err := u.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, workerLookupError(err)
	}
	return u.specRepo.ListByWorker(ctx, workerID)
}

func (u *SpecializationUsecase) Rename(ctx context.Context, id string, input *entities.UpdateSpecializationInput) (*entities.Specialization, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.BadRequest("Invalid specialization data")
	}
	if err := u.specRepo.UpdateName(ctx, id, name); err != nil {
		return nil, specializationLookupError(err)
	}
	return u.GetByID(ctx, id)
}

func (u *SpecializationUsecase) Delete(ctx context.Context, id string) (*entities.Specialization, error) {
	var spec *entities.Specialization
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		spec, err = u.specRepo.GetByID(ctx, id)
		if err != nil {
			return specializationLookupError(err)
		}
		if err := u.specRepo.Delete(ctx, id); err != nil {
			return specializationLookupError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return spec, nil
}

func specializationLookupError(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Specialization not found")
	}
	return err
}
