package handlers

import (
	"github.com/gin-gonic/gin"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/internal/usecases"
)

// TransactionHandler handles payment record endpoints
type TransactionHandler struct {
	transactionUsecase *usecases.TransactionUsecase
}

func NewTransactionHandler(transactionUsecase *usecases.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{transactionUsecase: transactionUsecase}
}

// POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var input entities.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalid(c, "Invalid transaction data", err)
		return
	}

	txn, err := h.transactionUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "Transaction created successfully", txn)
}

// GET /api/v1/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	txns, err := h.transactionUsecase.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, txns)
}

// GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	txn, err := h.transactionUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, txn)
}

// GET /api/v1/transactions/order/:orderId
func (h *TransactionHandler) ListByOrder(c *gin.Context) {
	txns, err := h.transactionUsecase.ListByOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, txns)
}

// GET /api/v1/transactions/user/:userId
func (h *TransactionHandler) ListByUser(c *gin.Context) {
	txns, err := h.transactionUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, txns)
}

// DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	txn, err := h.transactionUsecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Transaction deleted successfully", txn)
}
