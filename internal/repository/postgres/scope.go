package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
)

// tenantScoped is the read side of the query scoper: every select against a
// scoped entity goes through here and picks up a tenant_id filter from the
// request scope. An unresolved scope fails before any query runs.
func tenantScoped(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where("tenant_id = ?", tenantID), nil
}

// stampTenant is the create side: it returns the tenant id a new record must
// carry. A caller-supplied id that disagrees with the resolved scope is
// rejected rather than silently overwritten.
func stampTenant(ctx context.Context, explicit string) (string, error) {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return "", err
	}
	if explicit != "" && explicit != tenantID {
		return "", domain.ErrCrossTenantWrite
	}
	return tenantID, nil
}

// translateNotFound maps gorm's record-not-found onto the domain error. A
// record that exists under another tenant and a record that does not exist
// produce the same result on purpose.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
