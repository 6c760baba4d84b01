package repositories

import (
	"context"
	"time"

	"homeservice.backend/internal/domain/entities"
)

// LiveLocationRepository stores worker coordinate samples
type LiveLocationRepository interface {
	Create(ctx context.Context, loc *entities.LiveLocation) error
	GetByID(ctx context.Context, id string) (*entities.LiveLocation, error)
	List(ctx context.Context) ([]*entities.LiveLocation, error)
	ListByWorker(ctx context.Context, workerID string) ([]*entities.LiveLocation, error)
	LatestByWorker(ctx context.Context, workerID string) (*entities.LiveLocation, error)
	Delete(ctx context.Context, id string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
