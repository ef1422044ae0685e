package book

import (
	"time"

	"bookshelf-backend/internal/shared/validate"
)

// Book is the persisted entity. AuthorID references an existing author and is
// enforced by the store's foreign key, not by the application; deleting the
// author cascades to its books.
type Book struct {
	ID            string    `json:"id" db:"id"`
	CreatedOn     time.Time `json:"created_on" db:"created_on"`
	LastUpdatedOn time.Time `json:"last_updated_on" db:"last_updated_on"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	PublishDate   time.Time `json:"publish_date" db:"publish_date"`
	AuthorID      string    `json:"author_id" db:"author_id"`
}

// BookResponse is the wire form: flat persisted columns, author_id as the raw
// identifier string.
type BookResponse struct {
	ID            string    `json:"id"`
	CreatedOn     time.Time `json:"created_on"`
	LastUpdatedOn time.Time `json:"last_updated_on"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishDate   string    `json:"publish_date"`
	AuthorID      string    `json:"author_id"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:            b.ID,
		CreatedOn:     b.CreatedOn,
		LastUpdatedOn: b.LastUpdatedOn,
		Title:         b.Title,
		Description:   b.Description,
		PublishDate:   b.PublishDate.Format(validate.DateFormat),
		AuthorID:      b.AuthorID,
	}
}
