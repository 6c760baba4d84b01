package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/pkg/utils"
)

// requestIDKey mirrors middleware.RequestIDKey without importing it.
const requestIDKey = "request_id"

// Success writes data as-is.
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Created answers 201 with {message, data}.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"message": message, "data": data})
}

// OK answers 200 with {message, data}.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"message": message, "data": data})
}

// Data answers 200 with {data}.
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// List answers 200 with {data}, adding meta only when a page was requested.
func List(c *gin.Context, data interface{}, page utils.PaginationParams, meta utils.PaginationMeta) {
	body := gin.H{"data": data}
	if page.Enabled() {
		body["meta"] = meta
	}
	c.JSON(http.StatusOK, body)
}

// Error maps err to its AppError and writes {code, error[, requestId]}.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromError(err)
	ErrorWithError(c, appErr.Status, appErr.Code, appErr.Message)
}

// ErrorWithError writes an error body with an explicit status and code.
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	body := gin.H{
		"code":  code,
		"error": message,
	}
	if id := c.GetString(requestIDKey); id != "" {
		body["requestId"] = id
	}
	c.JSON(status, body)
}
