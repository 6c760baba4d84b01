package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// User represents a customer booking home services
type User struct {
	ID           string       `json:"id"`
	FullName     string       `json:"fullName"`
	Email        string       `json:"email"`
	PhoneNumber  string       `json:"phoneNumber"`
	PasswordHash string       `json:"-"`
	Location     null.String  `json:"location"`
	Address      null.String  `json:"address"`
	City         null.String  `json:"city"`
	State        null.String  `json:"state"`
	Country      null.String  `json:"country"`
	ZipCode      null.String  `json:"zipCode"`
	AutoLocation null.String  `json:"autoLocation"`
	Lat          null.Float64 `json:"lat"`
	Lng          null.Float64 `json:"lng"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	ID           string   `json:"id" binding:"omitempty,max=64"`
	FullName     string   `json:"fullName" binding:"required,max=100"`
	Email        string   `json:"email" binding:"required,email"`
	PhoneNumber  string   `json:"phoneNumber" binding:"required,max=15"`
	Password     string   `json:"password" binding:"omitempty,min=8"`
	Location     *string  `json:"location"`
	Address      *string  `json:"address"`
	City         *string  `json:"city" binding:"omitempty,max=100"`
	State        *string  `json:"state" binding:"omitempty,max=100"`
	Country      *string  `json:"country" binding:"omitempty,max=100"`
	ZipCode      *string  `json:"zipCode" binding:"omitempty,max=20"`
	AutoLocation *string  `json:"autoLocation"`
	Lat          *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng          *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	FullName     *string  `json:"fullName" binding:"omitempty,min=1,max=100"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	PhoneNumber  *string  `json:"phoneNumber" binding:"omitempty,min=1,max=15"`
	Password     *string  `json:"password" binding:"omitempty,min=8"`
	Location     *string  `json:"location"`
	Address      *string  `json:"address"`
	City         *string  `json:"city" binding:"omitempty,max=100"`
	State        *string  `json:"state" binding:"omitempty,max=100"`
	Country      *string  `json:"country" binding:"omitempty,max=100"`
	ZipCode      *string  `json:"zipCode" binding:"omitempty,max=20"`
	AutoLocation *string  `json:"autoLocation"`
	Lat          *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng          *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
}

// Empty reports whether the update carries no fields.
func (in UpdateUserInput) Empty() bool {
	return in.FullName == nil && in.Email == nil && in.PhoneNumber == nil && in.Password == nil &&
		in.Location == nil && in.Address == nil && in.City == nil && in.State == nil &&
		in.Country == nil && in.ZipCode == nil && in.AutoLocation == nil && in.Lat == nil && in.Lng == nil
}
