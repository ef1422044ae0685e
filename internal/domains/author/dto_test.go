package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorPayloadValidate(t *testing.T) {
	valid := AuthorPayload{Name: "A", Bio: "B", BirthDate: "1990-01-01"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		payload AuthorPayload
	}{
		{"empty name", AuthorPayload{Name: "", Bio: "B", BirthDate: "1990-01-01"}},
		{"empty bio", AuthorPayload{Name: "A", Bio: "", BirthDate: "1990-01-01"}},
		{"empty birth date", AuthorPayload{Name: "A", Bio: "B", BirthDate: ""}},
		{"truncated date", AuthorPayload{Name: "A", Bio: "B", BirthDate: "1991-01"}},
		{"impossible date", AuthorPayload{Name: "A", Bio: "B", BirthDate: "1990-13-45"}},
		{"wrong date format", AuthorPayload{Name: "A", Bio: "B", BirthDate: "01/01/1990"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.payload.Validate())
		})
	}
}

func TestAuthorPayloadValidateNamesField(t *testing.T) {
	err := AuthorPayload{Name: "A", Bio: "B", BirthDate: "bad"}.Validate()
	assert.ErrorContains(t, err, "birth_date")
}
