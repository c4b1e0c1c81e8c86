package authors

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	"github.com/5w1tchy/catalog-api/internal/api/httpx"
	"github.com/5w1tchy/catalog-api/internal/store/dbx"
	"github.com/5w1tchy/catalog-api/internal/validate"
)

// Delete: DELETE /authors/{id}
func Delete(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validate.ParseID(r.PathValue("id"))
		if err != nil {
			apperr.BadRequest(w, r, msgInvalidID)
			return
		}

		err = s.Delete(r.Context(), id)
		switch {
		case errors.Is(err, dbx.ErrNotFound):
			apperr.NotFound(w, r, msgNotFound)
		case errors.Is(err, dbx.ErrReferenced):
			apperr.Conflict(w, r, msgHasBooks)
		case err != nil:
			apperr.Internal(w, r, err, "failed to delete author")
		default:
			httpx.Message(w, http.StatusOK, msgDeleted)
		}
	}
}
