package entities

import "time"

// Specialization is a service category declared by a worker
type Specialization struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"workerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateSpecializationInput struct {
	ID       string `json:"id" binding:"omitempty,max=64"`
	WorkerID string `json:"workerId" binding:"required,max=64"`
	Name     string `json:"name" binding:"required,max=100"`
}

type UpdateSpecializationInput struct {
	Name string `json:"name" binding:"required,max=100"`
}
