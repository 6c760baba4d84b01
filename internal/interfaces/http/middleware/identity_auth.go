package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/interfaces/http/response"
	"homeservice.backend/pkg/jwt"
	"homeservice.backend/pkg/logger"
)

const (
	IdentitySubjectKey = "identity_subject"
	bearerPrefix       = "Bearer "
)

// TokenVerifier checks an identity provider session token.
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// IdentityAuthMiddleware requires a bearer token signed by the identity provider.
// A nil verifier leaves the routes open.
func IdentityAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			unauthorized(c, "Authorization header required")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				unauthorized(c, "Token expired")
				return
			}
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(IdentitySubjectKey, claims.Subject)
		c.Request = c.Request.WithContext(logger.WithSubject(c.Request.Context(), claims.Subject))
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	response.ErrorWithError(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, message)
	c.Abort()
}

// GetIdentitySubject returns the authenticated identity provider user id, if any.
func GetIdentitySubject(c *gin.Context) string {
	return c.GetString(IdentitySubjectKey)
}
