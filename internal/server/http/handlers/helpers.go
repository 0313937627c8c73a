package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
	"github.com/feastline/orderd/internal/server/http/dto"
	"github.com/feastline/orderd/internal/server/http/middleware"
)

// Credential extracts the caller's bearer credential from context.
func Credential(c *gin.Context) string {
	val, ok := c.Get(middleware.CredentialContextKey)
	if !ok {
		return ""
	}
	credential, _ := val.(string)
	return credential
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrAuthenticationFailed):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication failed"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "order not found"})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "access denied"})
	case errors.Is(err, domainErrors.ErrIllegalTransition):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "illegal status transition"})
	case errors.Is(err, domainErrors.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
