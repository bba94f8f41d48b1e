package domain

import (
	"context"
	"time"
)

// Registration is a purchaser's claim on tickets for one event. Registrations
// are immutable once created; the id and event_id are internal and never
// serialized.
// swagger:model Registration
type Registration struct {
	ID               int64     `json:"-"`
	EventID          int64     `json:"-"`
	PurchaserName    string    `json:"purchaser_name"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone"`
	Tickets          int       `json:"tickets"`
	PurchaseDatetime time.Time `json:"purchase_datetime"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts the registration; the storage layer assigns id and
	// purchase_datetime. Returns ErrDuplicateRegistration when the
	// (event_id, email) uniqueness constraint is violated and ErrNotFound
	// when the referenced event does not exist.
	Create(ctx context.Context, reg *Registration) error
	// ListByEventID returns the event's registrations, latest purchase first.
	ListByEventID(ctx context.Context, eventID int64) ([]*Registration, error)
}

// RegistrationService registers purchasers for events.
type RegistrationService interface {
	// Register validates the registration, verifies the event exists, and
	// inserts it. A confirmation email is sent best-effort on success.
	Register(ctx context.Context, reg *Registration) error
}
