package entities

import "time"

// LiveLocation is a timestamped coordinate sample for a worker
type LiveLocation struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"workerId"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateLiveLocationInput is shared by the REST endpoint and the socket channel.
// Lat and Lng are pointers so that a zero coordinate is still accepted.
type CreateLiveLocationInput struct {
	ID       string   `json:"id" binding:"omitempty,max=64"`
	WorkerID string   `json:"workerId" binding:"required,max=64"`
	Lat      *float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lng      *float64 `json:"lng" binding:"required,min=-180,max=180"`
}
