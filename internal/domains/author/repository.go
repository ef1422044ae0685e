package author

import "context"

// Repository is the data-access contract for authors.
type Repository interface {
	// List returns all authors in whatever order the store yields them.
	List(ctx context.Context) ([]Author, error)

	// Insert stores a new author and returns the row as read back from the
	// store, so store-computed defaults (timestamps) are reflected.
	Insert(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Author, error)

	// Update replaces every mutable field and refreshes last_updated_on.
	// Returns ErrAuthorNotFound when no row matches.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the row if present. Zero rows affected is not an error.
	Delete(ctx context.Context, id string) error
}
