package books

import (
	"context"

	"github.com/5w1tchy/catalog-api/internal/store/dbx"
)

const (
	// Inner join: a book always has an author while the foreign key holds.
	selectBook = `SELECT b.id, b.title, b.isbn, b.publication_year, b.author_id, a.name, b.created_at, b.updated_at ` +
		`FROM books b JOIN authors a ON a.id = b.author_id`

	listSQL   = selectBook + ` ORDER BY b.title`
	getSQL    = selectBook + ` WHERE b.id = $1`
	insertSQL = `INSERT INTO books (title, isbn, publication_year, author_id) VALUES ($1, $2, $3, $4) RETURNING id`
	updateSQL = `UPDATE books SET title = $1, isbn = $2, publication_year = $3, author_id = $4, updated_at = now() WHERE id = $5`
	deleteSQL = `DELETE FROM books WHERE id = $1`
)

type Store struct{ db dbx.DB }

func New(db dbx.DB) *Store { return &Store{db: db} }

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (Book, error) {
	var b Book
	err := s.Scan(&b.ID, &b.Title, &b.ISBN, &b.PublicationYear, &b.AuthorID, &b.AuthorName, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// List returns every book with its author's name, ordered by title. Never nil.
func (s *Store) List(ctx context.Context) ([]Book, error) {
	rows, err := s.db.QueryContext(ctx, listSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Book, error) {
	b, err := scanBook(s.db.QueryRowContext(ctx, getSQL, id))
	if err != nil {
		return Book{}, dbx.MapNoRows(err)
	}
	return b, nil
}

// Create inserts the book. dbx.ErrInvalidReference when the author does not exist.
func (s *Store) Create(ctx context.Context, in BookInput) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, insertSQL,
		in.Title, in.ISBN, in.PublicationYear, in.Author(),
	).Scan(&id)
	if err != nil {
		return 0, dbx.MapWriteError(err)
	}
	return id, nil
}

// Update replaces every mutable field of the book.
func (s *Store) Update(ctx context.Context, id int64, in BookInput) error {
	res, err := s.db.ExecContext(ctx, updateSQL,
		in.Title, in.ISBN, in.PublicationYear, in.Author(), id,
	)
	if err != nil {
		return dbx.MapWriteError(err)
	}
	return dbx.RequireAffected(res)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteSQL, id)
	if err != nil {
		return dbx.MapDeleteError(err)
	}
	return dbx.RequireAffected(res)
}
