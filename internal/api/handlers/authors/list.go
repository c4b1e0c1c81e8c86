package authors

import (
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	"github.com/5w1tchy/catalog-api/internal/api/httpx"
)

// List: GET /authors
func List(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.List(r.Context())
		if err != nil {
			apperr.Internal(w, r, err, msgListFailed)
			return
		}
		httpx.OK(w, list)
	}
}
