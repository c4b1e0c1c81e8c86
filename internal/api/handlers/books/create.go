package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	"github.com/5w1tchy/catalog-api/internal/api/httpx"
	storebooks "github.com/5w1tchy/catalog-api/internal/store/books"
	"github.com/5w1tchy/catalog-api/internal/store/dbx"
)

func decodeInput(w http.ResponseWriter, r *http.Request) (storebooks.BookInput, bool) {
	var in storebooks.BookInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		apperr.Decode(w, r, err)
		return in, false
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		apperr.Validation(w, r, err)
		return in, false
	}
	return in, true
}

// Create: POST /books
func Create(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}

		id, err := s.Create(r.Context(), in)
		switch {
		case errors.Is(err, dbx.ErrInvalidReference):
			unknownAuthor(w, r)
		case err != nil:
			apperr.Internal(w, r, err, "failed to create book")
		default:
			httpx.Created(w, id, msgCreated)
		}
	}
}
