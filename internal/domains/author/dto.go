package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookshelf-backend/internal/shared/validate"
)

// AuthorPayload is the request body for both create and update. Updates are
// full-field replaces: every field must be supplied, there is no patch form.
type AuthorPayload struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birth_date"`
}

func (p AuthorPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name,
			validation.Required.Error("check that name is non-empty"),
		),
		validation.Field(&p.Bio,
			validation.Required.Error("check that bio is non-empty"),
		),
		validation.Field(&p.BirthDate, validate.DateRules("birth_date")...),
	)
}
