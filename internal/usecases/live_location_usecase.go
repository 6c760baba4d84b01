package usecases

import (
	"context"
	"errors"

	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/domain/repositories"
	"homeservice.backend/pkg/utils"
)

// LiveLocationUsecase records worker coordinates and fans them out
type LiveLocationUsecase struct {
	locationRepo repositories.LiveLocationRepository
	workerRepo   repositories.WorkerRepository
	uow          repositories.UnitOfWork
	publisher    EventPublisher
}

func NewLiveLocationUsecase(
	locationRepo repositories.LiveLocationRepository,
	workerRepo repositories.WorkerRepository,
	uow repositories.UnitOfWork,
	publisher EventPublisher,
) *LiveLocationUsecase {
	return &LiveLocationUsecase{
		locationRepo: locationRepo,
		workerRepo:   workerRepo,
		uow:          uow,
		publisher:    publisher,
	}
}

// Create stores one sample and pushes it to the worker room and the locations room.
func (u *LiveLocationUsecase) Create(ctx context.Context, input *entities.CreateLiveLocationInput) (*entities.LiveLocation, error) {
	if input.Lat == nil || input.Lng == nil {
		return nil, domainerrors.BadRequest("Invalid location data")
	}
	if _, err := u.workerRepo.GetByID(ctx, input.WorkerID); err != nil {
		return nil, workerLookupError(err)
	}

	loc := &entities.LiveLocation{
		ID:       utils.IDOrNew(input.ID),
		WorkerID: input.WorkerID,
		Lat:      *input.Lat,
		Lng:      *input.Lng,
	}
	if err := u.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}

	publish(ctx, u.publisher, entities.WorkerRoom(loc.WorkerID), entities.EventWorkerLocationUpdate, loc)
	publish(ctx, u.publisher, entities.LocationsRoom, entities.EventWorkerLocationUpdate, loc)
	return loc, nil
}

func (u *LiveLocationUsecase) List(ctx context.Context) ([]*entities.LiveLocation, error) {
	return u.locationRepo.List(ctx)
}

// ListByWorker returns samples oldest first. An existing worker with no samples gets an empty list.
func (u *LiveLocationUsecase) ListByWorker(ctx context.Context, workerID string) ([]*entities.LiveLocation, error) {
	if _, err := u.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, workerLookupError(err)
	}
	locs, err := u.locationRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if locs == nil {
		locs = []*entities.LiveLocation{}
	}
	return locs, nil
}

func (u *LiveLocationUsecase) Latest(ctx context.Context, workerID string) (*entities.LiveLocation, error) {
	loc, err := u.locationRepo.LatestByWorker(ctx, workerID)
	if err != nil {
		return nil, locationLookupError(err)
	}
	return loc, nil
}

func (u *LiveLocationUsecase) Delete(ctx context.Context, id string) (*entities.LiveLocation, error) {
	var loc *entities.LiveLocation
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		loc, err = u.locationRepo.GetByID(ctx, id)
		if err != nil {
			return locationLookupError(err)
		}
		if err := u.locationRepo.Delete(ctx, id); err != nil {
			return locationLookupError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func locationLookupError(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Live location not found")
	}
	return err
}
