package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/pkg/logger"
	"homeservice.backend/pkg/utils"
)

// fail logs err and writes the mapped error response.
func fail(c *gin.Context, err error) {
	appErr := domainerrors.FromError(err)
	ctx := c.Request.Context()
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
		zap.Int("status", appErr.Status),
		zap.Error(err),
	}
	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(ctx, appErr.Message, fields...)
	} else {
		logger.Warn(ctx, appErr.Message, fields...)
	}
	response.Error(c, appErr)
}

// invalid answers a binding failure with a generic message; field detail stays in the log.
func invalid(c *gin.Context, message string, err error) {
	logger.Warn(c.Request.Context(), message, zap.String("route", c.FullPath()), zap.Error(err))
	response.Error(c, domainerrors.BadRequest(message))
}

func pagination(c *gin.Context) utils.PaginationParams {
	return utils.ParsePagination(c.Query("page"), c.Query("limit"))
}
