package authors_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/5w1tchy/catalog-api/internal/store/authors"
	"github.com/5w1tchy/catalog-api/internal/store/dbx"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t1 = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 = time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
)

func newStore(t *testing.T) (*authors.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return authors.New(db), mock
}

func authorCols() []string {
	return []string{"id", "name", "nationality", "created_at", "updated_at"}
}

func strPtr(s string) *string { return &s }

func TestList_OrdersByName(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, name, nationality, created_at, updated_at FROM authors ORDER BY name`,
	)).WillReturnRows(sqlmock.NewRows(authorCols()).
		AddRow(2, "Clarice Lispector", "Brazilian", t1, t1).
		AddRow(1, "Machado de Assis", nil, t2, t2))

	list, err := store.List(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, "Clarice Lispector", list[0].Name)
	require.NotNil(t, list[0].Nationality)
	assert.Equal(t, "Brazilian", *list[0].Nationality)
	assert.Nil(t, list[1].Nationality)
	assert.Equal(t, t2, list[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyIsNotNil(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(`FROM authors ORDER BY name`).
		WillReturnRows(sqlmock.NewRows(authorCols()))

	list, err := store.List(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestList_QueryError(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(`FROM authors ORDER BY name`).
		WillReturnError(errors.New("connection reset"))

	_, err := store.List(t.Context())
	assert.EqualError(t, err, "connection reset")
}

func TestGet(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM authors WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(authorCols()).AddRow(7, "Jorge Amado", "Brazilian", t1, t2))

	a, err := store.Get(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Jorge Amado", a.Name)
	assert.Equal(t, t2, a.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM authors WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(authorCols()))

	_, err := store.Get(t.Context(), 404)
	assert.ErrorIs(t, err, dbx.ErrNotFound)
}

func TestCreate(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO authors (name, nationality) VALUES ($1, $2) RETURNING id`,
	)).
		WithArgs("Cecília Meireles", "Brazilian").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	id, err := store.Create(t.Context(), authors.AuthorInput{Name: "Cecília Meireles", Nationality: strPtr("Brazilian")})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NullNationality(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO authors`)).
		WithArgs("Anonymous", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	id, err := store.Create(t.Context(), authors.AuthorInput{Name: "Anonymous"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE authors SET name = $1, nationality = $2, updated_at = now() WHERE id = $3`,
	)).
		WithArgs("Jorge Amado", "Brazilian", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Update(t.Context(), 3, authors.AuthorInput{Name: "Jorge Amado", Nationality: strPtr("Brazilian")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE authors SET`)).
		WithArgs("Nobody", nil, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(t.Context(), 99, authors.AuthorInput{Name: "Nobody"})
	assert.ErrorIs(t, err, dbx.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM authors WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(t.Context(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM authors WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, store.Delete(t.Context(), 5), dbx.ErrNotFound)
}

func TestDelete_StillHasBooks(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM authors WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "books_author_id_fkey"})

	err := store.Delete(t.Context(), 5)
	assert.ErrorIs(t, err, dbx.ErrReferenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorInput_Validate(t *testing.T) {
	in := authors.AuthorInput{Name: "   ", Nationality: strPtr("  ")}
	in.Normalize()
	assert.Nil(t, in.Nationality)

	err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	ok := authors.AuthorInput{Name: " Lygia  Fagundes Telles "}
	ok.Normalize()
	assert.Equal(t, "Lygia Fagundes Telles", ok.Name)
	assert.NoError(t, ok.Validate())
}
