package books

import (
	"time"

	"github.com/5w1tchy/catalog-api/internal/validate"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxTitleLength = 255
	MaxISBNLength  = 32
	MinYear        = 1000
	MaxYear        = 9999
)

// Book is always returned with the owning author's name joined in.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	ISBN            *string   `json:"isbn"`
	PublicationYear *int      `json:"publicationYear"`
	AuthorID        int64     `json:"authorId"`
	AuthorName      string    `json:"authorName"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookInput is the body of POST /books and PUT /books/{id}.
type BookInput struct {
	Title           string  `json:"title"`
	ISBN            *string `json:"isbn"`
	PublicationYear *int    `json:"publicationYear"`
	AuthorID        *int64  `json:"authorId"`
}

// Normalize cleans the input in place; call it before Validate.
func (in *BookInput) Normalize() {
	in.Title = validate.CleanString(in.Title)
	in.ISBN = validate.OptionalString(in.ISBN)
	in.PublicationYear = validate.OptionalInt(in.PublicationYear)
}

func (in BookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, MaxTitleLength),
		),
		validation.Field(&in.ISBN,
			validation.RuneLength(0, MaxISBNLength),
		),
		validation.Field(&in.PublicationYear,
			validation.Min(MinYear).Error("publicationYear must be a 4-digit year"),
			validation.Max(MaxYear).Error("publicationYear must be a 4-digit year"),
		),
		validation.Field(&in.AuthorID,
			validation.Required.Error("authorId is required"),
			validation.Min(int64(1)).Error("authorId must be a positive integer"),
		),
	)
}

// Author returns the validated author id. Only meaningful after Validate.
func (in BookInput) Author() int64 {
	if in.AuthorID == nil {
		return 0
	}
	return *in.AuthorID
}
