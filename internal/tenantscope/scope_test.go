package tenantscope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
)

func TestTenantID_Unresolved(t *testing.T) {
	_, err := TenantID(context.Background())
	assert.ErrorIs(t, err, domain.ErrTenantNotResolved)

	_, err = Tenant(context.Background())
	assert.ErrorIs(t, err, domain.ErrTenantNotResolved)

	assert.False(t, FromContext(context.Background()).Resolved())
}

func TestTenantID_Resolved(t *testing.T) {
	tenant := &domain.Tenant{ID: "tenant1", Name: "Acme"}
	ctx := WithTenant(context.Background(), tenant)

	id, err := TenantID(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "tenant1", id)

	got, err := Tenant(ctx)
	assert.NoError(t, err)
	assert.Equal(t, tenant, got)
}

func TestScope_NotSharedAcrossContexts(t *testing.T) {
	base := context.Background()
	scoped := WithTenant(base, &domain.Tenant{ID: "tenant1"})

	// The parent context stays unscoped.
	_, err := TenantID(base)
	assert.ErrorIs(t, err, domain.ErrTenantNotResolved)

	id, err := TenantID(scoped)
	assert.NoError(t, err)
	assert.Equal(t, "tenant1", id)
}
