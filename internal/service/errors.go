package service

import "errors"

var (
	// Tenant errors
	ErrTenantExists = errors.New("tenant already exists")

	// Export errors
	ErrInvalidExportResource = errors.New("invalid export resource")
	ErrInvalidExportFormat   = errors.New("invalid export format")
	ErrInvalidExportWindow   = errors.New("invalid export window")
)
