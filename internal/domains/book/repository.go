package book

import "context"

// Repository is the data-access contract for books.
type Repository interface {
	// List returns all books in store order.
	List(ctx context.Context) ([]Book, error)

	// ListByAuthor returns all books whose author_id matches.
	ListByAuthor(ctx context.Context, authorID string) ([]Book, error)

	// Insert stores a new book, returning the row as read back from the
	// store. Returns ErrAuthorMissing on a foreign-key violation.
	Insert(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Book, error)

	// Update replaces every mutable field. Returns ErrBookNotFound when no
	// row matches and ErrAuthorMissing on a foreign-key violation.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete removes the row if present. Zero rows affected is not an error.
	Delete(ctx context.Context, id string) error
}
