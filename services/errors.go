package services

import "errors"

// Sentinel errors the controllers map onto HTTP statuses, so raw database
// errors never reach the client for the known failure taxonomy.
var (
	ErrNotFound   = errors.New("record not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")

	// ErrInformantReferenced is the referential-integrity rejection: an
	// informant still pointed at by menus cannot be deleted.
	ErrInformantReferenced = errors.New("informant is referenced by existing menus")
)
