package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
)

type BaseHandler struct{}

// RequestCtx returns the request context. The tenant scope is already
// attached by the resolver middleware.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	return ginCtx.Request.Context()
}

// RespondError maps domain errors onto HTTP status codes. All tenant
// isolation failures are client errors.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTenantNotResolved):
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Tenant not resolved"})
	case errors.Is(err, domain.ErrInvalidAPIKey):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Invalid API key"})
	case errors.Is(err, domain.ErrCrossTenantWrite):
		c.JSON(http.StatusForbidden, dto.Error{Error: "Cross-tenant write rejected"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: "Record not found"})
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
