package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	"github.com/5w1tchy/catalog-api/internal/api/httpx"
	"github.com/5w1tchy/catalog-api/internal/store/dbx"
	"github.com/5w1tchy/catalog-api/internal/validate"
)

// Update: PUT /books/{id}
func Update(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validate.ParseID(r.PathValue("id"))
		if err != nil {
			apperr.BadRequest(w, r, msgInvalidID)
			return
		}
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}

		err = s.Update(r.Context(), id, in)
		switch {
		case errors.Is(err, dbx.ErrNotFound):
			apperr.NotFound(w, r, msgNotFound)
		case errors.Is(err, dbx.ErrInvalidReference):
			unknownAuthor(w, r)
		case err != nil:
			apperr.Internal(w, r, err, "failed to update book")
		default:
			httpx.Message(w, http.StatusOK, msgUpdated)
		}
	}
}
