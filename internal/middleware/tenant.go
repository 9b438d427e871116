package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/service"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

// Subdomains that never map to a tenant.
var reservedSubdomains = map[string]bool{
	"www":   true,
	"api":   true,
	"admin": true,
}

// TenantMiddleware resolves the tenant for each request and attaches it to
// the request context. Signals are tried in priority order:
//
//  1. X-Tenant-ID header
//  2. X-API-Key header
//  3. host subdomain
//  4. tenant_id query parameter
//
// The first signal that resolves wins; lower-priority signals are ignored
// even when they disagree. An X-API-Key that matches no active tenant fails
// the request immediately with 401 rather than falling through, since a
// client presenting a key expects to be authenticated by it.
type TenantMiddleware struct {
	tenantSvc *service.TenantService
	logger    *logger.Logger
}

func NewTenantMiddleware(tenantSvc *service.TenantService, logger *logger.Logger) *TenantMiddleware {
	return &TenantMiddleware{
		tenantSvc: tenantSvc,
		logger:    logger,
	}
}

// Resolve attaches the resolved tenant scope to the request context. Requests
// with no usable signal pass through unscoped; data access fails later for
// endpoints that need tenancy. Use RequireTenant after Resolve for endpoints
// that must reject unscoped requests up front.
func (m *TenantMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, err := m.resolve(c)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidAPIKey) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
				return
			}
			m.logger.Errorf("Tenant resolution failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if tenant != nil {
			ctx := tenantscope.WithTenant(c.Request.Context(), tenant)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// RequireTenant rejects requests that did not resolve to a tenant.
func (m *TenantMiddleware) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tenantscope.FromContext(c.Request.Context()).Resolved() {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Tenant not resolved"})
			return
		}
		c.Next()
	}
}

func (m *TenantMiddleware) resolve(c *gin.Context) (*domain.Tenant, error) {
	ctx := c.Request.Context()

	// 1. Explicit tenant id header. An unknown id is not a match; fall
	// through to the next signal.
	if tenantID := c.GetHeader("X-Tenant-ID"); tenantID != "" {
		tenant, err := m.tenantSvc.GetByID(ctx, tenantID)
		switch {
		case err == nil:
			return tenant, nil
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, err
		}
	}

	// 2. API key header. A key that matches nothing is a hard failure.
	if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
		tenant, err := m.tenantSvc.GetByAPIKey(ctx, apiKey)
		switch {
		case err == nil:
			return tenant, nil
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrInvalidAPIKey
		default:
			return nil, err
		}
	}

	// 3. Host subdomain.
	if sub := extractSubdomain(c.Request.Host); sub != "" {
		tenant, err := m.lookupDomain(ctx, sub)
		if err != nil {
			return nil, err
		}
		if tenant != nil {
			return tenant, nil
		}
	}

	// 4. Query parameter fallback.
	if tenantID := c.Query("tenant_id"); tenantID != "" {
		tenant, err := m.tenantSvc.GetByID(ctx, tenantID)
		switch {
		case err == nil:
			return tenant, nil
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, err
		}
	}

	return nil, nil
}

func (m *TenantMiddleware) lookupDomain(ctx context.Context, sub string) (*domain.Tenant, error) {
	tenant, err := m.tenantSvc.GetByDomain(ctx, sub)
	switch {
	case err == nil:
		return tenant, nil
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

// extractSubdomain returns the first host label, or "" when the host has no
// subdomain or the label is reserved.
func extractSubdomain(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}

	sub := strings.ToLower(parts[0])
	if reservedSubdomains[sub] {
		return ""
	}
	return sub
}
