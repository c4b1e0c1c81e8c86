package authors

import (
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/apperr"
	"github.com/5w1tchy/catalog-api/internal/api/httpx"
	storeauthors "github.com/5w1tchy/catalog-api/internal/store/authors"
)

// decodeInput reads and validates an author body. It writes the error
// response itself and reports false when the request must stop here.
func decodeInput(w http.ResponseWriter, r *http.Request) (storeauthors.AuthorInput, bool) {
	var in storeauthors.AuthorInput
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

// Create: POST /authors
func Create(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}

		id, err := s.Create(r.Context(), in)
		if err != nil {
			apperr.Internal(w, r, err, "failed to create author")
			return
		}
		httpx.Created(w, id, msgCreated)
	}
}
