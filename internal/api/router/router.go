package router

import (
	"net/http"

	"github.com/5w1tchy/catalog-api/internal/api/handlers"
	"github.com/5w1tchy/catalog-api/internal/api/handlers/authors"
	"github.com/5w1tchy/catalog-api/internal/api/handlers/books"
	storeauthors "github.com/5w1tchy/catalog-api/internal/store/authors"
	storebooks "github.com/5w1tchy/catalog-api/internal/store/books"
	"github.com/5w1tchy/catalog-api/internal/store/dbx"
)

func Router(db dbx.DB) http.Handler {
	mux := http.NewServeMux()

	authorStore := storeauthors.New(db)
	bookStore := storebooks.New(db)

	// Root
	mux.HandleFunc("GET /{$}", handlers.RootHandler)

	// Authors
	for _, p := range []string{"/authors", "/authors/{$}"} {
		mux.Handle("GET "+p, authors.List(authorStore))
		mux.Handle("POST "+p, authors.Create(authorStore))
	}
	mux.Handle("GET /authors/{id}", authors.Get(authorStore))
	mux.Handle("PUT /authors/{id}", authors.Update(authorStore))
	mux.Handle("DELETE /authors/{id}", authors.Delete(authorStore))

	// Books
	for _, p := range []string{"/books", "/books/{$}"} {
		mux.Handle("GET "+p, books.List(bookStore))
		mux.Handle("POST "+p, books.Create(bookStore))
	}
	mux.Handle("GET /books/{id}", books.Get(bookStore))
	mux.Handle("PUT /books/{id}", books.Update(bookStore))
	mux.Handle("DELETE /books/{id}", books.Delete(bookStore))

	return mux
}
