package authors

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	"github.com/5w1tchy/catalog-api/internal/api/httpx"
	"github.com/5w1tchy/catalog-api/internal/store/dbx"
	"github.com/5w1tchy/catalog-api/internal/validate"
)

// Get: GET /authors/{id}
func Get(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validate.ParseID(r.PathValue("id"))
		if err != nil {
			apperr.BadRequest(w, r, msgInvalidID)
			return
		}

		a, err := s.Get(r.Context(), id)
		switch {
		case errors.Is(err, dbx.ErrNotFound):
			apperr.NotFound(w, r, msgNotFound)
		case err != nil:
			apperr.Internal(w, r, err, "failed to fetch author")
		default:
			httpx.OK(w, a)
		}
	}
}
