package authors

import (
	"context"

	storeauthors "github.com/5w1tchy/catalog-api/internal/store/authors"
)

// Store is what the author handlers need from persistence.
type Store interface {
	List(ctx context.Context) ([]storeauthors.Author, error)
	Get(ctx context.Context, id int64) (storeauthors.Author, error)
	Create(ctx context.Context, in storeauthors.AuthorInput) (int64, error)
	Update(ctx context.Context, id int64, in storeauthors.AuthorInput) error
	Delete(ctx context.Context, id int64) error
}

const (
	msgNotFound   = "author not found"
	msgInvalidID  = "author id must be a positive integer"
	msgHasBooks   = "author cannot be deleted while books reference it"
	msgCreated    = "Author created successfully"
	msgUpdated    = "Author updated successfully"
	msgDeleted    = "Author deleted successfully"
	msgListFailed = "failed to list authors"
)
