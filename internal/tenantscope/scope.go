// Package tenantscope carries the tenant resolved for one request through
// its context. The resolver middleware sets the scope exactly once; every
// data-access path reads it back before touching storage. Nothing here is
// shared across requests.
package tenantscope

import (
	"context"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
)

type contextKey struct{}

var scopeKey contextKey

// Scope holds the tenant a request was resolved to. A zero Scope means the
// request carried no usable tenant signal.
type Scope struct {
	Tenant *domain.Tenant
}

// Resolved reports whether a tenant was resolved.
func (s Scope) Resolved() bool {
	return s.Tenant != nil
}

// WithTenant returns a context scoped to tenant. The resolver calls this once
// per request; the scope is immutable afterwards.
func WithTenant(ctx context.Context, tenant *domain.Tenant) context.Context {
	return context.WithValue(ctx, scopeKey, Scope{Tenant: tenant})
}

// FromContext returns the request scope, or a zero scope when none was set.
func FromContext(ctx context.Context) Scope {
	s, _ := ctx.Value(scopeKey).(Scope)
	return s
}

// TenantID returns the resolved tenant id or ErrTenantNotResolved.
func TenantID(ctx context.Context) (string, error) {
	s := FromContext(ctx)
	if !s.Resolved() {
		return "", domain.ErrTenantNotResolved
	}
	return s.Tenant.ID, nil
}

// Tenant returns the resolved tenant or ErrTenantNotResolved.
func Tenant(ctx context.Context) (*domain.Tenant, error) {
	s := FromContext(ctx)
	if !s.Resolved() {
		return nil, domain.ErrTenantNotResolved
	}
	return s.Tenant, nil
}
