package handlers

import (
	"github.com/gin-gonic/gin"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/internal/usecases"
)

// OrderHandler handles booking endpoints
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// CreateOrder books a worker and notifies the worker room
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid order data", err)
		return
	}

	order, err := h.orderUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "Order created successfully", order)
}

// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page := pagination(c)
	orders, meta, err := h.orderUsecase.List(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}
	response.List(c, orders, page, meta)
}

// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, order)
}

// GET /api/v1/orders/user/:userId
func (h *OrderHandler) ListByUser(c *gin.Context) {
	orders, err := h.orderUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, orders)
}

// GET /api/v1/orders/worker/:workerId
func (h *OrderHandler) ListByWorker(c *gin.Context) {
	orders, err := h.orderUsecase.ListByWorker(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, orders)
}

// UpdateOrderStatus moves the order and notifies the customer room
// PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var input entities.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid order status", err)
		return
	}

	order, err := h.orderUsecase.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Order status updated successfully", order)
}

// DELETE /api/v1/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	order, err := h.orderUsecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Order deleted successfully", order)
}
