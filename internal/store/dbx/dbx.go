package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer/Execer/Getter let the stores work with *sql.DB and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
type Getter interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is everything a store needs from the pool.
type DB interface {
	Queryer
	Execer
	Getter
}

// Classified store errors. Handlers switch on these with errors.Is and never
// look at driver errors themselves.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("referenced row does not exist")
	ErrReferenced       = errors.New("row is still referenced")
)

// SQLSTATE codes we translate.
const (
	codeForeignKeyViolation = "23503"
)

// SQLState returns the Postgres error code carried by err, or "".
func SQLState(err error) string {
	var pg *pgconn.PgError
	if errors.As(err, &pg) {
		return pg.Code
	}
	return ""
}

// MapWriteError classifies an INSERT or UPDATE failure. A foreign key violation
// here means the row points at something that does not exist.
func MapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if SQLState(err) == codeForeignKeyViolation {
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}
	return err
}

// MapDeleteError classifies a DELETE failure. A foreign key violation here
// means other rows still depend on the target.
func MapDeleteError(err error) error {
	if err == nil {
		return nil
	}
	if SQLState(err) == codeForeignKeyViolation {
		return fmt.Errorf("%w: %w", ErrReferenced, err)
	}
	return err
}

// MapNoRows turns sql.ErrNoRows into ErrNotFound.
func MapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// RequireAffected returns ErrNotFound when a single-row statement touched nothing.
func RequireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
