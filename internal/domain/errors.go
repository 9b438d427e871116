package domain

import "errors"

// Tenant isolation error taxonomy. All four surface to callers as client
// errors; none are retried.
var (
	// ErrTenantNotResolved means no usable tenant signal was present on a
	// tenant-required request.
	ErrTenantNotResolved = errors.New("tenant not resolved")

	// ErrInvalidAPIKey means an X-API-Key header was present but matched no
	// active tenant.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// ErrCrossTenantWrite means a write carried an explicit tenant id that
	// disagreed with the resolved tenant.
	ErrCrossTenantWrite = errors.New("cross-tenant write rejected")

	// ErrNotFound covers both true absence and records outside the resolved
	// tenant's scope. Keeping the two indistinguishable avoids leaking
	// cross-tenant existence.
	ErrNotFound = errors.New("record not found")
)

var (
	// ErrInsufficientStock means a sale or adjustment would take a product
	// below zero stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidTransition means an order status change is not allowed by
	// the order status machine.
	ErrInvalidTransition = errors.New("invalid status transition")
)
