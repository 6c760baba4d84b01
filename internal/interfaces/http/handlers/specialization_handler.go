package handlers

import (
	"github.com/gin-gonic/gin"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/internal/usecases"
)

// SpecializationHandler handles service category endpoints
type SpecializationHandler struct {
	specializationUsecase *usecases.SpecializationUsecase
	workerUsecase         *usecases.WorkerUsecase
}

func NewSpecializationHandler(specializationUsecase *usecases.SpecializationUsecase, workerUsecase *usecases.WorkerUsecase) *SpecializationHandler {
	return &SpecializationHandler{
		specializationUsecase: specializationUsecase,
		workerUsecase:         workerUsecase,
	}
}

// POST /api/v1/specializations
func (h *SpecializationHandler) CreateSpecialization(c *gin.Context) {
	var input entities.CreateSpecializationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid specialization data", err)
		return
	}

	spec, err := h.specializationUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "Specialization created successfully", spec)
}

// GET /api/v1/specializations
func (h *SpecializationHandler) ListSpecializations(c *gin.Context) {
	specs, err := h.specializationUsecase.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, specs)
}

// GET /api/v1/specializations/:id
func (h *SpecializationHandler) GetSpecialization(c *gin.Context) {
	spec, err := h.specializationUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, spec)
}

// GET /api/v1/specializations/worker/:workerId
func (h *SpecializationHandler) ListByWorker(c *gin.Context) {
	specs, err := h.specializationUsecase.ListByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, specs)
}

// ListWorkersByCategory returns the workers offering a category
// GET /api/v1/specializations/workers/:category
func (h *SpecializationHandler) ListWorkersByCategory(c *gin.Context) {
	workers, err := h.workerUsecase.ListBySpecialization(c.Request.Context(), c.Param("category"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, workers)
}

// PUT /api/v1/specializations/:id
func (h *SpecializationHandler) UpdateSpecialization(c *gin.Context) {
	var input entities.UpdateSpecializationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid specialization data", err)
		return
	}

	spec, err := h.specializationUsecase.Rename(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Specialization updated successfully", spec)
}

// DELETE /api/v1/specializations/:id
func (h *SpecializationHandler) DeleteSpecialization(c *gin.Context) {
	spec, err := h.specializationUsecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Specialization deleted successfully", spec)
}
