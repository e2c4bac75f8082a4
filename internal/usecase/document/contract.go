package document

import (
	"context"

	domcol "github.com/otissv/fieldkit/internal/domain/collection"
	domdoc "github.com/otissv/fieldkit/internal/domain/document"
)

// Repository defines the storage contract for documents.
type Repository interface {
	List(ctx context.Context, collection string) ([]domdoc.Document, error)
	Get(ctx context.Context, collection, id string) (domdoc.Document, error)
	Insert(ctx context.Context, collection string, doc domdoc.Document) error
	Update(ctx context.Context, collection string, doc domdoc.Document) error
	Delete(ctx context.Context, collection string, ids ...string) error
}

// CollectionRepository reads and updates collection schemas for column
// operations.
type CollectionRepository interface {
	Get(ctx context.Context, name string) (domcol.Collection, error)
	Update(ctx context.Context, col domcol.Collection) error
}
