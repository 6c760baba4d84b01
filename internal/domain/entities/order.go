package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// OrderStatus represents order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists the legal values in declaration order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Valid reports whether s is one of the declared statuses.
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order links a user to a worker for one job
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	WorkerID        string      `json:"workerId"`
	Status          OrderStatus `json:"status"`
	Description     null.String `json:"description"`
	BookedFor       null.Time   `json:"bookedFor"`
	DurationMinutes null.Int    `json:"durationMinutes"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// CreateOrderInput represents input for booking a worker
type CreateOrderInput struct {
	ID              string      `json:"id" binding:"omitempty,max=64"`
	UserID          string      `json:"userId" binding:"required,max=64"`
	WorkerID        string      `json:"workerId" binding:"required,max=64"`
	Status          OrderStatus `json:"status" binding:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
	Description     *string     `json:"description" binding:"omitempty,max=2000"`
	BookedFor       *time.Time  `json:"bookedFor"`
	DurationMinutes *int        `json:"durationMinutes" binding:"omitempty,min=1,max=1440"`
}

// UpdateOrderStatusInput moves an order to another status. Transitions are not checked.
type UpdateOrderStatusInput struct {
	Status OrderStatus `json:"status" binding:"required,oneof=pending confirmed in_progress completed cancelled"`
}
