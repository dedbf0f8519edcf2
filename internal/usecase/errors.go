package usecase

import "errors"

// Service-level error taxonomy. Handlers translate these to HTTP statuses:
// validation and invalid-state map to 400, unauthorized to 401, forbidden
// to 403, not-found to 404, conflict to 409; anything else is a 500.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
