package domain

import (
	"context"
	"time"
)

// EventStatusActive is the only status the public listings surface.
const EventStatusActive = "active"

// Phase labels derived from end_datetime versus the current time. Never
// persisted; recomputed on every read.
const (
	PhaseUpcoming = "upcoming"
	PhasePast     = "past"
)

// Event is the full persisted event row. Every field except ID is nullable:
// Create and Update store NULL for any field the caller omits.
// swagger:model Event
type Event struct {
	ID                int64      `json:"id"`
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	ImageURL          *string    `json:"image_url"`
	LocationCity      *string    `json:"location_city"`
	LocationVenue     *string    `json:"location_venue"`
	StartDatetime     *time.Time `json:"start_datetime"`
	EndDatetime       *time.Time `json:"end_datetime"`
	IsFree            *bool      `json:"is_free"`
	PriceCents        *int64     `json:"price_cents"`
	GoalAmountCents   *int64     `json:"goal_amount_cents"`
	RaisedAmountCents *int64     `json:"raised_amount_cents"`
	Status            *string    `json:"status"`
	OrgID             *int64     `json:"org_id"`
	CategoryID        *int64     `json:"category_id"`
}

// EventListItem is the projection returned by the home, past, and search
// listings: the event joined with its category name, plus the derived phase.
// swagger:model EventListItem
type EventListItem struct {
	ID            int64      `json:"id"`
	Title         *string    `json:"title"`
	StartDatetime *time.Time `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
	LocationCity  *string    `json:"location_city"`
	LocationVenue *string    `json:"location_venue"`
	ImageURL      *string    `json:"image_url"`
	IsFree        *bool      `json:"is_free"`
	PriceCents    *int64     `json:"price_cents"`
	Category      *string    `json:"category"`
	Phase         string     `json:"phase"`
}

// EventHighlight is the reduced projection used for promotional display.
// swagger:model EventHighlight
type EventHighlight struct {
	ID            int64      `json:"id"`
	Title         *string    `json:"title"`
	LocationCity  *string    `json:"location_city"`
	LocationVenue *string    `json:"location_venue"`
	StartDatetime *time.Time `json:"start_datetime"`
}

// EventDetail is the full event joined with its category and organisation,
// plus its registrations ordered latest first.
// swagger:model EventDetail
type EventDetail struct {
	Event
	CategoryName  *string         `json:"category_name"`
	OrgName       *string         `json:"org_name"`
	OrgMission    *string         `json:"org_mission"`
	OrgWebsite    *string         `json:"org_website"`
	Registrations []*Registration `json:"registrations"`
}

// SearchFilter carries the optional search predicates. A nil field means no
// constraint on that dimension. All supplied predicates are ANDed together;
// active status is always implied.
type SearchFilter struct {
	StartFrom    *time.Time // start_datetime lower bound (inclusive)
	EndUntil     *time.Time // end_datetime upper bound (inclusive)
	City         *string    // case-insensitive substring on location_city
	CategorySlug *string    // exact slug match
}

// SearchResult bundles the matched listings with their count.
// swagger:model SearchResult
type SearchResult struct {
	Count   int              `json:"count"`
	Results []*EventListItem `json:"results"`
}

// Phase reports whether the event is upcoming or past relative to now. An
// event with no end datetime has not ended.
func Phase(end *time.Time, now time.Time) string {
	if end != nil && !end.After(now) {
		return PhasePast
	}
	return PhaseUpcoming
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	// ListUpcoming returns active events ending after now, soonest start first.
	ListUpcoming(ctx context.Context, now time.Time) ([]*EventListItem, error)
	// ListPast returns active events ended at or before now, latest end first.
	ListPast(ctx context.Context, now time.Time) ([]*EventListItem, error)
	// ListHighlights returns at most limit upcoming active events, soonest start first.
	ListHighlights(ctx context.Context, now time.Time, limit int) ([]*EventHighlight, error)
	Search(ctx context.Context, filter SearchFilter) ([]*EventListItem, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	// GetDetail returns the event joined with its category and organisation.
	// Registrations are attached by the service layer.
	GetDetail(ctx context.Context, id int64) (*EventDetail, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, id int64, e *Event) error
	// Delete removes the event. It returns ErrDeleteBlocked when any
	// registration references the event and ErrNotFound when no row matched.
	// The guard check runs before the delete attempt.
	Delete(ctx context.Context, id int64) error
}

// CatalogService defines the read side: listings, search, detail, categories.
type CatalogService interface {
	HomeListing(ctx context.Context) ([]*EventListItem, error)
	PastListing(ctx context.Context) ([]*EventListItem, error)
	Highlights(ctx context.Context) ([]*EventHighlight, error)
	Search(ctx context.Context, filter SearchFilter) (*SearchResult, error)
	EventDetail(ctx context.Context, id int64) (*EventDetail, error)
	Categories(ctx context.Context) ([]*Category, error)
}

// AdminService defines event create/update/delete.
type AdminService interface {
	// CreateEvent inserts the event and returns the newly assigned id.
	CreateEvent(ctx context.Context, e *Event) (int64, error)
	// UpdateEvent overwrites all fields of the matched row unconditionally.
	UpdateEvent(ctx context.Context, id int64, e *Event) error
	DeleteEvent(ctx context.Context, id int64) error
}
