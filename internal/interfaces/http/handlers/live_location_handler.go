package handlers

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/internal/usecases"
)

// LiveLocationHandler handles worker location endpoints and socket updates
type LiveLocationHandler struct {
	locationUsecase *usecases.LiveLocationUsecase
}

func NewLiveLocationHandler(locationUsecase *usecases.LiveLocationUsecase) *LiveLocationHandler {
	return &LiveLocationHandler{locationUsecase: locationUsecase}
}

// POST /api/v1/live-locations
func (h *LiveLocationHandler) CreateLiveLocation(c *gin.Context) {
	var input entities.CreateLiveLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid location data", err)
		return
	}

	location, err := h.locationUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "Live location created successfully", location)
}

// GET /api/v1/live-locations
func (h *LiveLocationHandler) ListLiveLocations(c *gin.Context) {
	locations, err := h.locationUsecase.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, locations)
}

// GET /api/v1/live-locations/:workerId
func (h *LiveLocationHandler) ListByWorker(c *gin.Context) {
	locations, err := h.locationUsecase.ListByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, locations)
}

// GET /api/v1/live-locations/:workerId/latest
func (h *LiveLocationHandler) Latest(c *gin.Context) {
	location, err := h.locationUsecase.Latest(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, location)
}

// DELETE /api/v1/live-locations/:id
func (h *LiveLocationHandler) DeleteLiveLocation(c *gin.Context) {
	location, err := h.locationUsecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Live location deleted successfully", location)
}

// HandleSocketUpdate applies a location_update frame with the same rules as the REST endpoint.
func (h *LiveLocationHandler) HandleSocketUpdate(ctx context.Context, payload json.RawMessage) error {
	var input entities.CreateLiveLocationInput
	if err := json.Unmarshal(payload, &input); err != nil {
		return domainerrors.BadRequest("Invalid location data")
	}
	if err := binding.Validator.ValidateStruct(&input); err != nil {
		return domainerrors.BadRequest("Invalid location data")
	}
	_, err := h.locationUsecase.Create(ctx, &input)
	return err
}
