package books

import (
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	"github.com/5w1tchy/catalog-api/internal/api/httpx"
)

// List: GET /books
func List(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.List(r.Context())
		if err != nil {
			apperr.Internal(w, r, err, "failed to list books")
			return
		}
		httpx.OK(w, list)
	}
}
