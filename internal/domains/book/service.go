package book

import "context"

// Service is the business-logic contract for books.
type Service interface {
	List(ctx context.Context) ([]BookResponse, error)
	ListByAuthor(ctx context.Context, authorID string) ([]BookResponse, error)
	Create(ctx context.Context, payload BookPayload) (*BookResponse, error)
	Get(ctx context.Context, id string) (*BookResponse, error)
	Update(ctx context.Context, id string, payload BookPayload) (*BookResponse, error)
	Delete(ctx context.Context, id string) error
}
