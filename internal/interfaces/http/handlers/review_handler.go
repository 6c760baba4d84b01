package handlers

import (
	"github.com/gin-gonic/gin"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/internal/usecases"
)

// ReviewHandler handles rating endpoints
type ReviewHandler struct {
	reviewUsecase *usecases.ReviewUsecase
}

func NewReviewHandler(reviewUsecase *usecases.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

// POST /api/v1/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input entities.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid review data", err)
		return
	}

	review, err := h.reviewUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "Review created successfully", review)
}

// GET /api/v1/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewUsecase.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, reviews)
}

// GET /api/v1/reviews/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.reviewUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, review)
}

// GET /api/v1/reviews/order/:orderId
func (h *ReviewHandler) ListByOrder(c *gin.Context) {
	reviews, err := h.reviewUsecase.ListByOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, reviews)
}

// GET /api/v1/reviews/worker/:workerId
func (h *ReviewHandler) ListByWorker(c *gin.Context) {
	reviews, err := h.reviewUsecase.ListByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, reviews)
}

// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	review, err := h.reviewUsecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Review deleted successfully", review)
}
