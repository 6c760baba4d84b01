package handlers

import (
	"github.com/gin-gonic/gin"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/internal/usecases"
)

// WorkerHandler handles service provider endpoints
type WorkerHandler struct {
	workerUsecase *usecases.WorkerUsecase
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerUsecase *usecases.WorkerUsecase) *WorkerHandler {
	return &WorkerHandler{workerUsecase: workerUsecase}
}

// POST /api/v1/workers
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var input entities.CreateWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid worker data", err)
		return
	}

	worker, err := h.workerUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "Worker created successfully", worker)
}

// GET /api/v1/workers
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	workers, err := h.workerUsecase.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, workers)
}

// GET /api/v1/workers/:id
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	worker, err := h.workerUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, worker)
}

// GET /api/v1/workers/email/:email
func (h *WorkerHandler) GetWorkerByEmail(c *gin.Context) {
	worker, err := h.workerUsecase.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, worker)
}

// PUT /api/v1/workers/:id
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	var input entities.UpdateWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid worker data", err)
		return
	}

	worker, err := h.workerUsecase.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Worker updated successfully", worker)
}

// SetAvailability is the go-live toggle
// PATCH /api/v1/workers/:id/availability
func (h *WorkerHandler) SetAvailability(c *gin.Context) {
	var input entities.SetAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid availability data", err)
		return
	}

	worker, err := h.workerUsecase.SetAvailability(c.Request.Context(), c.Param("id"), *input.IsAvailable)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Availability updated", worker)
}

// DELETE /api/v1/workers/:id
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	worker, err := h.workerUsecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Worker deleted successfully", worker)
}
