package domain

import "context"

// Category groups events under a URL-safe slug. Read-only in this service.
// swagger:model Category
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryRepository defines storage operations for categories.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*Category, error)
}
