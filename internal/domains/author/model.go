package author

import (
	"time"

	"bookshelf-backend/internal/shared/validate"
)

// Author is the persisted entity. The identifier is an opaque UUID string
// generated server-side at creation and immutable afterwards; both timestamps
// are set by the store, never by the client.
type Author struct {
	ID            string    `json:"id" db:"id"`
	CreatedOn     time.Time `json:"created_on" db:"created_on"`
	LastUpdatedOn time.Time `json:"last_updated_on" db:"last_updated_on"`
	Name          string    `json:"name" db:"name"`
	Bio           string    `json:"bio" db:"bio"`
	BirthDate     time.Time `json:"birth_date" db:"birth_date"`
}

// AuthorResponse is the wire form: a flat object of persisted columns, with
// the calendar date rendered YYYY-MM-DD. No relationship traversal.
type AuthorResponse struct {
	ID            string    `json:"id"`
	CreatedOn     time.Time `json:"created_on"`
	LastUpdatedOn time.Time `json:"last_updated_on"`
	Name          string    `json:"name"`
	Bio           string    `json:"bio"`
	BirthDate     string    `json:"birth_date"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:            a.ID,
		CreatedOn:     a.CreatedOn,
		LastUpdatedOn: a.LastUpdatedOn,
		Name:          a.Name,
		Bio:           a.Bio,
		BirthDate:     a.BirthDate.Format(validate.DateFormat),
	}
}
