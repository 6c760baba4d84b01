package repositories

import (
	"context"

	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/pkg/utils"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context, page utils.PaginationParams) ([]*entities.Order, int64, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Order, error)
	ListByWorker(ctx context.Context, workerID string) ([]*entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error
	Delete(ctx context.Context, id string) error
}

// TransactionRepository defines transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByID(ctx context.Context, id string) (*entities.Transaction, error)
	List(ctx context.Context) ([]*entities.Transaction, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entities.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// ReviewRepository defines review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	GetByID(ctx context.Context, id string) (*entities.Review, error)
	List(ctx context.Context) ([]*entities.Review, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entities.Review, error)
	ListByWorker(ctx context.Context, workerID string) ([]*entities.Review, error)
	Delete(ctx context.Context, id string) error
}
