package domain

import "errors"

// Sentinel errors shared across services and repositories. The HTTP layer maps
// these onto status codes; anything else is treated as a storage failure.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrDeleteBlocked         = errors.New("registrations exist for this event")
	ErrDuplicateRegistration = errors.New("already registered for this event")
)
