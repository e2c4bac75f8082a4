package collection

import (
	"context"

	domcol "github.com/otissv/fieldkit/internal/domain/collection"
)

// Repository defines the storage contract for collections.
type Repository interface {
	Create(ctx context.Context, col domcol.Collection) error
	Get(ctx context.Context, name string) (domcol.Collection, error)
	List(ctx context.Context) ([]domcol.Collection, error)
	Rename(ctx context.Context, name, newName string) (domcol.Collection, error)
	Delete(ctx context.Context, name string) error
}
