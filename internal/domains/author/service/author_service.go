package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/author"
	"bookshelf-backend/internal/shared/validate"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

// NewAuthorService receives the repository abstraction so the business logic
// can be tested against a fake store.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]author.AuthorResponse, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]author.AuthorResponse, len(authors))
	for i, a := range authors {
		responses[i] = *a.ToResponse()
	}

	return responses, nil
}

// Create generates the identifier server-side, inserts, and returns the row
// as read back from the store.
func (s *authorService) Create(ctx context.Context, payload author.AuthorPayload) (*author.AuthorResponse, error) {
	birthDate, err := validate.ParseDate(payload.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date: %w", err)
	}

	newAuthor := &author.Author{
		ID:        uuid.NewString(),
		Name:      payload.Name,
		Bio:       payload.Bio,
		BirthDate: birthDate,
	}

	created, err := s.repo.Insert(ctx, newAuthor)
	if err != nil {
		return nil, err
	}

	return created.ToResponse(), nil
}

func (s *authorService) Get(ctx context.Context, id string) (*author.AuthorResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return a.ToResponse(), nil
}

// Update is a full-field replace: every field of the payload overwrites the
// stored record. An absent id is an error, unlike reads.
func (s *authorService) Update(ctx context.Context, id string, payload author.AuthorPayload) (*author.AuthorResponse, error) {
	birthDate, err := validate.ParseDate(payload.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date: %w", err)
	}

	updated, err := s.repo.Update(ctx, &author.Author{
		ID:        id,
		Name:      payload.Name,
		Bio:       payload.Bio,
		BirthDate: birthDate,
	})
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

func (s *authorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
