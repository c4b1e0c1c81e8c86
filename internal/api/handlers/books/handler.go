package books

import (
	"context"
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	storebooks "github.com/5w1tchy/catalog-api/internal/store/books"
)

// Store is what the book handlers need from persistence.
type Store interface {
	List(ctx context.Context) ([]storebooks.Book, error)
	Get(ctx context.Context, id int64) (storebooks.Book, error)
	Create(ctx context.Context, in storebooks.BookInput) (int64, error)
	Update(ctx context.Context, id int64, in storebooks.BookInput) error
	Delete(ctx context.Context, id int64) error
}

const (
	msgNotFound      = "book not found"
	msgInvalidID     = "book id must be a positive integer"
	msgUnknownAuthor = "authorId does not reference an existing author"
	msgCreated       = "Book created successfully"
	msgUpdated       = "Book updated successfully"
	msgDeleted       = "Book deleted successfully"
)

// unknownAuthor answers a write whose authorId has no matching author.
func unknownAuthor(w http.ResponseWriter, r *http.Request) {
	apperr.Write(w, r, apperr.Problem{
		Status:  http.StatusBadRequest,
		Message: msgUnknownAuthor,
		FieldErrors: []apperr.FieldError{
			{Field: "authorId", Code: "fk", Message: msgUnknownAuthor},
		},
	})
}
