package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Review is a rating left against a completed order
type Review struct {
	ID        string      `json:"id"`
	OrderID   string      `json:"orderId"`
	UserID    string      `json:"userId"`
	WorkerID  string      `json:"workerId"`
	Rating    int         `json:"rating"`
	Comment   null.String `json:"comment"`
	CreatedAt time.Time   `json:"createdAt"`
}

type CreateReviewInput struct {
	ID      string  `json:"id" binding:"omitempty,max=64"`
	OrderID string  `json:"orderId" binding:"required,max=64"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}
