package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/shared/validate"
)

// bookService implements book.Service.
type bookService struct {
	repo book.Repository
}

func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context) ([]book.BookResponse, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return toResponses(books), nil
}

func (s *bookService) ListByAuthor(ctx context.Context, authorID string) ([]book.BookResponse, error) {
	books, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return toResponses(books), nil
}

// Create generates the identifier server-side and inserts. The author_id is
// not checked here; a bad reference fails at the store's foreign key.
func (s *bookService) Create(ctx context.Context, payload book.BookPayload) (*book.BookResponse, error) {
	publishDate, err := validate.ParseDate(payload.PublishDate)
	if err != nil {
		return nil, fmt.Errorf("invalid publish_date: %w", err)
	}

	newBook := &book.Book{
		ID:          uuid.NewString(),
		Title:       payload.Title,
		Description: payload.Description,
		PublishDate: publishDate,
		AuthorID:    payload.AuthorID,
	}

	created, err := s.repo.Insert(ctx, newBook)
	if err != nil {
		return nil, err
	}

	return created.ToResponse(), nil
}

func (s *bookService) Get(ctx context.Context, id string) (*book.BookResponse, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return b.ToResponse(), nil
}

func (s *bookService) Update(ctx context.Context, id string, payload book.BookPayload) (*book.BookResponse, error) {
	publishDate, err := validate.ParseDate(payload.PublishDate)
	if err != nil {
		return nil, fmt.Errorf("invalid publish_date: %w", err)
	}

	updated, err := s.repo.Update(ctx, &book.Book{
		ID:          id,
		Title:       payload.Title,
		Description: payload.Description,
		PublishDate: publishDate,
		AuthorID:    payload.AuthorID,
	})
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toResponses(books []book.Book) []book.BookResponse {
	responses := make([]book.BookResponse, len(books))
	for i, b := range books {
		responses[i] = *b.ToResponse()
	}
	return responses
}
