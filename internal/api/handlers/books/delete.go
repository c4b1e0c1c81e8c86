package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	"github.com/5w1tchy/catalog-api/internal/api/httpx"
	"github.com/5w1tchy/catalog-api/internal/store/dbx"
	"github.com/5w1tchy/catalog-api/internal/validate"
)

// Delete: DELETE /books/{id}. Nothing references a book, so there is no conflict path.
func Delete(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validate.ParseID(r.PathValue("id"))
		if err != nil {
			apperr.BadRequest(w, r, msgInvalidID)
			return
		}

		if err := s.Delete(r.Context(), id); errors.Is(err, dbx.ErrNotFound) {
			apperr.NotFound(w, r, msgNotFound)
			return
		} else if err != nil {
			apperr.Internal(w, r, err, "failed to delete book")
			return
		}
		httpx.Message(w, http.StatusOK, msgDeleted)
	}
}
