package usecases

import (
	"context"
	"errors"

	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/domain/repositories"
	"homeservice.backend/pkg/utils"
)

// ReviewUsecase handles ratings left on orders
type ReviewUsecase struct {
	reviewRepo repositories.ReviewRepository
	orderRepo  repositories.OrderRepository
	uow        repositories.UnitOfWork
}

func NewReviewUsecase(reviewRepo repositories.ReviewRepository, orderRepo repositories.OrderRepository, uow repositories.UnitOfWork) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
		uow:        uow,
	}
}

// Create attaches a rating to an order. User and worker are taken from the order.
func (u *ReviewUsecase) Create(ctx context.Context, input *entities.CreateReviewInput) (*entities.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.BadRequest("Invalid review data")
	}
	order, err := u.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, orderLookupError(err)
	}

	review := &entities.Review{
		ID:       utils.IDOrNew(input.ID),
		OrderID:  order.ID,
		UserID:   order.UserID,
		WorkerID: order.WorkerID,
		Rating:   input.Rating,
	}
	if input.Comment != nil {
		review.Comment.SetValid(*input.Comment)
	}
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (u *ReviewUsecase) List(ctx context.Context) ([]*entities.Review, error) {
	return u.reviewRepo.List(ctx)
}

func (u *ReviewUsecase) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	review, err := u.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, reviewLookupError(err)
	}
	return review, nil
}

func (u *ReviewUsecase) ListByOrder(ctx context.Context, orderID string) ([]*entities.Review, error) {
	return u.reviewRepo.ListByOrder(ctx, orderID)
}

func (u *ReviewUsecase) ListByWorker(ctx context.Context, workerID string) ([]*entities.Review, error) {
	return u.reviewRepo.ListByWorker(ctx, workerID)
}

func (u *ReviewUsecase) Delete(ctx context.Context, id string) (*entities.Review, error) {
	var review *entities.Review
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		review, err = u.reviewRepo.GetByID(ctx, id)
		if err != nil {
			return reviewLookupError(err)
		}
		if err := u.reviewRepo.Delete(ctx, id); err != nil {
			return reviewLookupError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func reviewLookupError(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Review not found")
	}
	return err
}
