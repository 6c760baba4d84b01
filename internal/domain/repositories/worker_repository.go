package repositories

import (
	"context"

	"homeservice.backend/internal/domain/entities"
)

// WorkerRepository defines worker data operations
type WorkerRepository interface {
	Create(ctx context.Context, worker *entities.Worker) error
	GetByID(ctx context.Context, id string) (*entities.Worker, error)
	GetByEmail(ctx context.Context, email string) (*entities.Worker, error)
	List(ctx context.Context) ([]*entities.Worker, error)
	ListBySpecialization(ctx context.Context, category string) ([]*entities.Worker, error)
	Update(ctx context.Context, worker *entities.Worker) error
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
}

// SpecializationRepository defines specialization data operations
type SpecializationRepository interface {
	Create(ctx context.Context, s *entities.Specialization) error
	GetByID(ctx context.Context, id string) (*entities.Specialization, error)
	List(ctx context.Context) ([]*entities.Specialization, error)
	ListByWorker(ctx context.Context, workerID string) ([]*entities.Specialization, error)
	UpdateName(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}
