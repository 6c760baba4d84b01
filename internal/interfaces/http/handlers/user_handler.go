package handlers

import (
	"github.com/gin-gonic/gin"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/internal/usecases"
)

// UserHandler handles customer endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// CreateUser handles user creation
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid user data", err)
		return
	}

	user, err := h.userUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "User created successfully", user)
}

// ListUsers returns all users, or one page when page/limit are given
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := pagination(c)
	users, meta, err := h.userUsecase.List(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	response.List(c, users, page, meta)
}

// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, user)
}

// GET /api/v1/users/email/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userUsecase.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, user)
}

// UpdateUser applies a partial update
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var input entities.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid user data", err)
		return
	}

	user, err := h.userUsecase.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "User updated successfully", user)
}

// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, err := h.userUsecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "User deleted successfully", user)
}
