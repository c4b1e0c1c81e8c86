package authors

import (
	"context"

	"github.com/5w1tchy/catalog-api/internal/store/dbx"
)

const (
	selectAuthor = `SELECT id, name, nationality, created_at, updated_at FROM authors`

	listSQL   = selectAuthor + ` ORDER BY name`
	getSQL    = selectAuthor + ` WHERE id = $1`
	insertSQL = `INSERT INTO authors (name, nationality) VALUES ($1, $2) RETURNING id`
	updateSQL = `UPDATE authors SET name = $1, nationality = $2, updated_at = now() WHERE id = $3`
	deleteSQL = `DELETE FROM authors WHERE id = $1`
)

type Store struct{ db dbx.DB }

func New(db dbx.DB) *Store { return &Store{db: db} }

type scanner interface {
	Scan(dest ...any) error
}

func scanAuthor(s scanner) (Author, error) {
	var a Author
	err := s.Scan(&a.ID, &a.Name, &a.Nationality, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// List returns every author ordered by name. Never nil.
func (s *Store) List(ctx context.Context) ([]Author, error) {
	rows, err := s.db.QueryContext(ctx, listSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Author, error) {
	a, err := scanAuthor(s.db.QueryRowContext(ctx, getSQL, id))
	if err != nil {
		return Author{}, dbx.MapNoRows(err)
	}
	return a, nil
}

// Create inserts the author and returns the assigned id.
func (s *Store) Create(ctx context.Context, in AuthorInput) (int64, error) {
	var id int64
	if err := s.db.QueryRowContext(ctx, insertSQL, in.Name, in.Nationality).Scan(&id); err != nil {
		return 0, dbx.MapWriteError(err)
	}
	return id, nil
}

// Update replaces name and nationality. dbx.ErrNotFound when id does not exist.
func (s *Store) Update(ctx context.Context, id int64, in AuthorInput) error {
	res, err := s.db.ExecContext(ctx, updateSQL, in.Name, in.Nationality, id)
	if err != nil {
		return dbx.MapWriteError(err)
	}
	return dbx.RequireAffected(res)
}

// Delete removes the author. dbx.ErrReferenced when books still point at it.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteSQL, id)
	if err != nil {
		return dbx.MapDeleteError(err)
	}
	return dbx.RequireAffected(res)
}
