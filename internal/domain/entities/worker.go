package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Worker represents a service provider that can go live and receive jobs
type Worker struct {
	ID              string            `json:"id"`
	FullName        string            `json:"fullName"`
	Email           string            `json:"email"`
	PasswordHash    string            `json:"-"`
	PhoneNumber     string            `json:"phoneNumber"`
	ProfilePicture  null.String       `json:"profilePicture"`
	Location        null.String       `json:"location"`
	Description     null.String       `json:"description"`
	IsAvailable     bool              `json:"isAvailable"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	Specializations []*Specialization `json:"specializations,omitempty"`
}

// CreateWorkerInput represents input for creating a worker
type CreateWorkerInput struct {
	ID             string  `json:"id" binding:"omitempty,max=64"`
	FullName       string  `json:"fullName" binding:"required,max=100"`
	Email          string  `json:"email" binding:"required,email"`
	PhoneNumber    string  `json:"phoneNumber" binding:"required,max=15"`
	Password       string  `json:"password" binding:"omitempty,min=8"`
	ProfilePicture *string `json:"profilePicture" binding:"omitempty,url"`
	Location       *string `json:"location"`
	Description    *string `json:"description" binding:"omitempty,max=2000"`
	IsAvailable    bool    `json:"isAvailable"`
}

// UpdateWorkerInput is a partial update; nil fields are left untouched.
type UpdateWorkerInput struct {
	FullName       *string `json:"fullName" binding:"omitempty,min=1,max=100"`
	Email          *string `json:"email" binding:"omitempty,email"`
	PhoneNumber    *string `json:"phoneNumber" binding:"omitempty,min=1,max=15"`
	Password       *string `json:"password" binding:"omitempty,min=8"`
	ProfilePicture *string `json:"profilePicture" binding:"omitempty,url"`
	Location       *string `json:"location"`
	Description    *string `json:"description" binding:"omitempty,max=2000"`
	IsAvailable    *bool   `json:"isAvailable"`
}

// Empty reports whether the update carries no fields.
func (in UpdateWorkerInput) Empty() bool {
	return in.FullName == nil && in.Email == nil && in.PhoneNumber == nil && in.Password == nil &&
		in.ProfilePicture == nil && in.Location == nil && in.Description == nil && in.IsAvailable == nil
}

// SetAvailabilityInput toggles whether a worker is live
type SetAvailabilityInput struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}
