package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	"github.com/5w1tchy/catalog-api/internal/api/httpx"
	"github.com/5w1tchy/catalog-api/internal/store/dbx"
	"github.com/5w1tchy/catalog-api/internal/validate"
)

// Get: GET /books/{id}. The body carries authorName, same as the list.
func Get(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validate.ParseID(r.PathValue("id"))
		if err != nil {
			apperr.BadRequest(w, r, msgInvalidID)
			return
		}

		b, err := s.Get(r.Context(), id)
		if errors.Is(err, dbx.ErrNotFound) {
			apperr.NotFound(w, r, msgNotFound)
			return
		} else if err != nil {
			apperr.Internal(w, r, err, "failed to fetch book")
			return
		}
		httpx.OK(w, b)
	}
}
