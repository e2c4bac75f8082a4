package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/otissv/fieldkit/internal/domain"
	domdoc "github.com/otissv/fieldkit/internal/domain/document"
	"github.com/otissv/fieldkit/pkg/store"
)

// Documents is an in-memory document repository: one ordered table per
// collection, rows held as loosely typed records.
type Documents struct {
	mu     sync.RWMutex
	tables map[string]*store.Table
}

// NewDocuments creates an empty document repository.
func NewDocuments() *Documents {
	return &Documents{tables: make(map[string]*store.Table)}
}

func (r *Documents) tableLocked(collection string) *store.Table {
	t, ok := r.tables[collection]
	if !ok {
		t = store.NewTable()
		r.tables[collection] = t
	}
	return t
}

// List returns all documents of a collection in insertion order.
func (r *Documents) List(_ context.Context, collection string) ([]domdoc.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[collection]
	if !ok {
		return []domdoc.Document{}, nil
	}
	docs := make([]domdoc.Document, 0, t.Size())
	for _, e := range t.Entries() {
		docs = append(docs, recordToDoc(e.Key, e.Value))
	}
	return docs, nil
}

// Get retrieves one document by id.
func (r *Documents) Get(_ context.Context, collection, id string) (domdoc.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[collection]
	if !ok {
		return domdoc.Document{}, fmt.Errorf("document %q: %w", id, domain.ErrDocumentNotFound)
	}
	row, ok := t.Get(id)
	if !ok {
		return domdoc.Document{}, fmt.Errorf("document %q: %w", id, domain.ErrDocumentNotFound)
	}
	return recordToDoc(id, row), nil
}

// Insert appends a new document, rejecting duplicates.
func (r *Documents) Insert(_ context.Context, collection string, doc domdoc.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.tableLocked(collection)
	if t.Has(doc.ID()) {
		return fmt.Errorf("document %q: %w", doc.ID(), domain.ErrAlreadyExists)
	}
	t.Set(doc.ID(), docToRecord(doc))
	return nil
}

// Update replaces a stored document by id.
func (r *Documents) Update(_ context.Context, collection string, doc domdoc.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.tableLocked(collection)
	if !t.Has(doc.ID()) {
		return fmt.Errorf("document %q: %w", doc.ID(), domain.ErrDocumentNotFound)
	}
	t.Set(doc.ID(), docToRecord(doc))
	return nil
}

// Delete removes one or more documents. Missing ids fail the whole batch
// before anything is deleted.
func (r *Documents) Delete(_ context.Context, collection string, ids ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.tableLocked(collection)
	for _, id := range ids {
		if !t.Has(id) {
			return fmt.Errorf("document %q: %w", id, domain.ErrDocumentNotFound)
		}
	}
	t.Delete(ids...)
	return nil
}

// rename moves a collection's table under a new name.
func (r *Documents) rename(collection, newName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tables[collection]; ok {
		delete(r.tables, collection)
		r.tables[newName] = t
	}
}

// drop discards a collection's table.
func (r *Documents) drop(collection string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, collection)
}
