package authors

import (
	"time"

	"github.com/5w1tchy/catalog-api/internal/validate"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength        = 255
	MaxNationalityLength = 100
)

type Author struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Nationality *string   `json:"nationality"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthorInput is the body of POST /authors and PUT /authors/{id}.
type AuthorInput struct {
	Name        string  `json:"name"`
	Nationality *string `json:"nationality"`
}

// Normalize cleans the input in place; call it before Validate.
func (in *AuthorInput) Normalize() {
	in.Name = validate.CleanString(in.Name)
	in.Nationality = validate.OptionalString(in.Nationality)
}

func (in AuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, MaxNameLength),
		),
		validation.Field(&in.Nationality,
			validation.RuneLength(0, MaxNationalityLength),
		),
	)
}
