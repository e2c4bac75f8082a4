// Package memory holds in-process repositories backed by the ordered store
// containers. Persistence proper is out of scope for this core; these
// repositories are the reference implementation of the storage contracts.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/otissv/fieldkit/internal/domain"
	domcol "github.com/otissv/fieldkit/internal/domain/collection"
	"github.com/otissv/fieldkit/pkg/store"
)

// Collections is an in-memory collection repository. A mutex guards the
// store because HTTP handlers share one instance.
type Collections struct {
	mu   sync.RWMutex
	list *store.List[domcol.Collection]
	docs *Documents
}

// NewCollections creates an empty collection repository. When docs is
// non-nil, deleting a collection also drops its documents.
func NewCollections(docs *Documents) *Collections {
	return &Collections{
		list: store.NewList(func(c domcol.Collection) string { return c.Name() }),
		docs: docs,
	}
}

// Create stores a new collection, rejecting duplicates.
func (r *Collections) Create(_ context.Context, col domcol.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.list.Has(col.Name()) {
		return fmt.Errorf("collection %q: %w", col.Name(), domain.ErrAlreadyExists)
	}
	r.list.Add(col)
	return nil
}

// Get retrieves a collection by name.
func (r *Collections) Get(_ context.Context, name string) (domcol.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	col, ok := r.list.Get(name)
	if !ok {
		return domcol.Collection{}, fmt.Errorf("collection %q: %w", name, domain.ErrNotFound)
	}
	return col, nil
}

// List returns all collections in creation order.
func (r *Collections) List(_ context.Context) ([]domcol.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list.Data(), nil
}

// Rename rekeys a collection, preserving its position, and moves its
// documents along.
func (r *Collections) Rename(_ context.Context, name, newName string) (domcol.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	col, ok := r.list.Get(name)
	if !ok {
		return domcol.Collection{}, fmt.Errorf("collection %q: %w", name, domain.ErrNotFound)
	}
	if name != newName && r.list.Has(newName) {
		return domcol.Collection{}, fmt.Errorf("collection %q: %w", newName, domain.ErrAlreadyExists)
	}
	renamed, err := col.WithName(newName)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("rename: %w: %w", domain.ErrInvalidSchema, err)
	}
	if !r.list.Rekey(name, newName, renamed) {
		return domcol.Collection{}, fmt.Errorf("collection %q: %w", newName, domain.ErrAlreadyExists)
	}
	if r.docs != nil {
		r.docs.rename(name, newName)
	}
	return renamed, nil
}

// Update replaces a stored collection schema.
func (r *Collections) Update(_ context.Context, col domcol.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.list.Has(col.Name()) {
		return fmt.Errorf("collection %q: %w", col.Name(), domain.ErrNotFound)
	}
	r.list.Set(col.Name(), col)
	return nil
}

// Delete removes a collection and its documents.
func (r *Collections) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.list.Has(name) {
		return fmt.Errorf("collection %q: %w", name, domain.ErrNotFound)
	}
	r.list.Delete(name)
	if r.docs != nil {
		r.docs.drop(name)
	}
	return nil
}
