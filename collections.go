package fieldkit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/otissv/fieldkit/internal/domain"
	collectionuc "github.com/otissv/fieldkit/internal/usecase/collection"
)

// CollectionService manages collections.
type CollectionService struct {
	svc collectionUseCase
	obs *observer
}

// Create creates a new collection with the given columns. Each column gets
// the default validation rules of its field kind.
func (s *CollectionService) Create(
	ctx context.Context, name string, columns ...ColumnSpec,
) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.create", start, err) }()

	col, err := s.svc.Create(ctx, name, toInternalSpecs(columns))
	if err != nil {
		return Collection{}, fmt.Errorf("create collection: %w", err)
	}
	return fromInternalCollection(col), nil
}

// Ensure creates a collection if it does not exist.
// If it already exists, returns its info.
func (s *CollectionService) Ensure(
	ctx context.Context, name string, columns ...ColumnSpec,
) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.ensure", start, err) }()

	col, err := s.svc.Create(ctx, name, toInternalSpecs(columns))
	if err == nil {
		return fromInternalCollection(col), nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return Collection{}, fmt.Errorf("ensure collection: %w", err)
	}

	existing, err := s.svc.Get(ctx, name)
	if err != nil {
		return Collection{}, fmt.Errorf("ensure collection: %w", err)
	}
	return fromInternalCollection(existing), nil
}

// Get retrieves collection metadata by name.
func (s *CollectionService) Get(ctx context.Context, name string) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.get", start, err) }()

	col, err := s.svc.Get(ctx, name)
	if err != nil {
		return Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return fromInternalCollection(col), nil
}

// List returns all collections in creation order.
func (s *CollectionService) List(ctx context.Context) (_ []Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.list", start, err) }()

	cols, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	out := make([]Collection, 0, len(cols))
	for _, c := range cols {
		out = append(out, fromInternalCollection(c))
	}
	return out, nil
}

// Rename changes a collection's name. Its documents follow.
func (s *CollectionService) Rename(ctx context.Context, name, newName string) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.rename", start, err) }()

	col, err := s.svc.Rename(ctx, name, newName)
	if err != nil {
		return Collection{}, fmt.Errorf("rename collection: %w", err)
	}
	return fromInternalCollection(col), nil
}

// Delete removes a collection and all of its documents.
func (s *CollectionService) Delete(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.delete", start, err) }()

	if err = s.svc.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}

func toInternalSpecs(columns []ColumnSpec) []collectionuc.ColumnSpec {
	specs := make([]collectionuc.ColumnSpec, 0, len(columns))
	for _, c := range columns {
		specs = append(specs, collectionuc.ColumnSpec{Name: c.Name, Type: c.Type})
	}
	return specs
}
