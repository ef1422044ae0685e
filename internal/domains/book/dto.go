package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookshelf-backend/internal/shared/validate"
)

// BookPayload is the request body for both create and update (full replace).
// author_id is only checked for shape here; existence is deferred to the
// store's foreign-key enforcement.
type BookPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishDate string `json:"publish_date"`
	AuthorID    string `json:"author_id"`
}

func (p BookPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title,
			validation.Required.Error("check that title is non-empty"),
		),
		validation.Field(&p.Description,
			validation.Required.Error("check that description is non-empty"),
		),
		validation.Field(&p.PublishDate, validate.DateRules("publish_date")...),
		validation.Field(&p.AuthorID,
			validation.Required.Error("check that author_id is non-empty"),
		),
	)
}
