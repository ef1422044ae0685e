package author

import "context"

// Service is the business-logic contract for authors. Payloads arrive
// already validated by the handler layer.
type Service interface {
	List(ctx context.Context) ([]AuthorResponse, error)
	Create(ctx context.Context, payload AuthorPayload) (*AuthorResponse, error)
	Get(ctx context.Context, id string) (*AuthorResponse, error)
	Update(ctx context.Context, id string, payload AuthorPayload) (*AuthorResponse, error)
	Delete(ctx context.Context, id string) error
}
