package usecases

import (
	"context"
	"errors"

	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/domain/repositories"
	"homeservice.backend/pkg/utils"
)

// OrderUsecase books workers and tracks job status
type OrderUsecase struct {
	orderRepo  repositories.OrderRepository
	userRepo   repositories.UserRepository
	workerRepo repositories.WorkerRepository
	uow        repositories.UnitOfWork
	publisher  EventPublisher
}

func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	workerRepo repositories.WorkerRepository,
	uow repositories.UnitOfWork,
	publisher EventPublisher,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		workerRepo: workerRepo,
		uow:        uow,
		publisher:  publisher,
	}
}

// Create books a worker for a user and notifies the worker room.
func (u *OrderUsecase) Create(ctx context.Context, input *entities.CreateOrderInput) (*entities.Order, error) {
	status := input.Status
	if status == "" {
		status = entities.OrderStatusPending
	}
	if !status.Valid() {
		return nil, domainerrors.BadRequest("Invalid order status")
	}
	if _, err := u.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, userLookupError(err)
	}
	if _, err := u.workerRepo.GetByID(ctx, input.WorkerID); err != nil {
		return nil, workerLookupError(err)
	}

	order := &entities.Order{
		ID:       utils.IDOrNew(input.ID),
		UserID:   input.UserID,
		WorkerID: input.WorkerID,
		Status:   status,
	}
	if input.Description != nil {
		order.Description.SetValid(*input.Description)
	}
	if input.BookedFor != nil {
		order.BookedFor.SetValid(input.BookedFor.UTC())
	}
	if input.DurationMinutes != nil {
		order.DurationMinutes.SetValid(*input.DurationMinutes)
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	publish(ctx, u.publisher, entities.WorkerRoom(order.WorkerID), entities.EventNewJobBroadcast, order)
	return order, nil
}

func (u *OrderUsecase) List(ctx context.Context, page utils.PaginationParams) ([]*entities.Order, utils.PaginationMeta, error) {
	orders, total, err := u.orderRepo.List(ctx, page)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return orders, utils.CalculateMeta(total, page.Page, page.Limit), nil
}

func (u *OrderUsecase) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, orderLookupError(err)
	}
	return order, nil
}

func (u *OrderUsecase) ListByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, userLookupError(err)
	}
	return u.orderRepo.ListByUser(ctx, userID)
}

func (u *OrderUsecase) ListByWorker(ctx context.Context, workerID string) ([]*entities.Order, error) {
	if _, err := u.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, workerLookupError(err)
	}
	return u.orderRepo.ListByWorker(ctx, workerID)
}

// UpdateStatus moves the order to status without checking the transition and notifies the user room.
func (u *OrderUsecase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (*entities.Order, error) {
	if !status.Valid() {
		return nil, domainerrors.BadRequest("Invalid order status")
	}

	var order *entities.Order
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = u.orderRepo.GetByID(ctx, id)
		if err != nil {
			return orderLookupError(err)
		}
		if err := u.orderRepo.UpdateStatus(ctx, id, status); err != nil {
			return orderLookupError(err)
		}
		order.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, u.publisher, entities.UserRoom(order.UserID), entities.EventJobStatus, entities.JobStatusEvent{
		OrderID:  order.ID,
		WorkerID: order.WorkerID,
		Status:   order.Status,
	})
	return order, nil
}

func (u *OrderUsecase) Delete(ctx context.Context, id string) (*entities.Order, error) {
	var order *entities.Order
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = u.orderRepo.GetByID(ctx, id)
		if err != nil {
			return orderLookupError(err)
		}
		if err := u.orderRepo.Delete(ctx, id); err != nil {
			return orderLookupError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func orderLookupError(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Order not found")
	}
	return err
}
