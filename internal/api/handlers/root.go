package handlers

import (
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/httpx"
)

const rootMessage = "Library catalog API. Resources: /authors, /books"

// RootHandler answers GET / so clients can check the API is up.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	httpx.Message(w, http.StatusOK, rootMessage)
}
