package fieldkit

import (
	"context"
	"fmt"
	"time"

	domdoc "github.com/otissv/fieldkit/internal/domain/document"
	documentuc "github.com/otissv/fieldkit/internal/usecase/document"
	"github.com/otissv/fieldkit/pkg/field"
)

// DocumentService manages documents and columns within a single collection.
type DocumentService struct {
	collection string
	svc        documentUseCase
	obs        *observer
}

// ListQuery selects a page of documents.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string // "createdAt" or a column ID
	Direction string // "asc" or "desc"
	Nulls     string // "first" or "last"
}

// List returns one page of documents. Zero values in the query fall back
// to the documented defaults (page 1, limit 10, newest first, nulls last).
func (s *DocumentService) List(ctx context.Context, q ListQuery) (_ []Document, err error) {
	start := time.Now()
	defer func() { s.obs.observe("document.list", start, err) }()

	query, err := documentuc.NewQuery(q.Page, q.Limit, q.SortBy, q.Direction, q.Nulls)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	docs, err := s.svc.List(ctx, s.collection, query)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return fromInternalDocuments(docs), nil
}

// Insert adds a new row seeded with each column's default or initial value.
func (s *DocumentService) Insert(ctx context.Context) (_ Document, err error) {
	start := time.Now()
	defer func() { s.obs.observe("document.insert", start, err) }()

	doc, err := s.svc.InsertRow(ctx, s.collection)
	if err != nil {
		return Document{}, fmt.Errorf("insert document: %w", err)
	}
	return fromInternalDocument(doc), nil
}

// Update validates and stores one cell value. On validation failure the
// stored value is left untouched and the error carries the field messages.
func (s *DocumentService) Update(ctx context.Context, docID, columnID string, value any) (_ Document, err error) {
	start := time.Now()
	defer func() { s.obs.observe("document.update", start, err) }()

	doc, err := s.svc.UpdateData(ctx, s.collection, docID, columnID, value)
	if err != nil {
		return Document{}, fmt.Errorf("update document: %w", err)
	}
	return fromInternalDocument(doc), nil
}

// Delete removes documents by ID. The batch is all-or-nothing.
func (s *DocumentService) Delete(ctx context.Context, ids ...string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("document.delete", start, err) }()

	if err = s.svc.DeleteRows(ctx, s.collection, ids...); err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	return nil
}

// InsertColumn appends a column to the schema and backfills existing rows
// with the kind's initial state.
func (s *DocumentService) InsertColumn(ctx context.Context, name string, ft field.Type) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("column.insert", start, err) }()

	col, err := s.svc.InsertColumn(ctx, s.collection, name, ft)
	if err != nil {
		return Collection{}, fmt.Errorf("insert column: %w", err)
	}
	return fromInternalCollection(col), nil
}

// ColumnChange is a partial column update. Nil fields are left as they are;
// options merge key by key into the existing bag.
type ColumnChange struct {
	Name    *string
	Options field.Options
	Rules   *field.Rules
}

// UpdateColumn applies a partial change to one column.
func (s *DocumentService) UpdateColumn(ctx context.Context, columnID string, change ColumnChange) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("column.update", start, err) }()

	col, err := s.svc.UpdateColumn(ctx, s.collection, columnID, documentuc.ColumnChange{
		Name:    change.Name,
		Options: change.Options,
		Rules:   change.Rules,
	})
	if err != nil {
		return Collection{}, fmt.Errorf("update column: %w", err)
	}
	return fromInternalCollection(col), nil
}

// DeleteColumn removes a column and its values from every row.
func (s *DocumentService) DeleteColumn(ctx context.Context, columnID string) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("column.delete", start, err) }()

	col, err := s.svc.DeleteColumn(ctx, s.collection, columnID)
	if err != nil {
		return Collection{}, fmt.Errorf("delete column: %w", err)
	}
	return fromInternalCollection(col), nil
}

// SortColumn returns all documents ordered by one column's values.
func (s *DocumentService) SortColumn(ctx context.Context, columnID, direction string) (_ []Document, err error) {
	start := time.Now()
	defer func() { s.obs.observe("column.sort", start, err) }()

	docs, err := s.svc.SortColumn(ctx, s.collection, columnID, direction)
	if err != nil {
		return nil, fmt.Errorf("sort column: %w", err)
	}
	return fromInternalDocuments(docs), nil
}

// Reorder rearranges the schema columns. The ID list must be a permutation
// of the current columns.
func (s *DocumentService) Reorder(ctx context.Context, orderedIDs []string) (_ Collection, err error) {
	start := time.Now()
	defer func() { s.obs.observe("column.reorder", start, err) }()

	col, err := s.svc.UpdateColumnOrder(ctx, s.collection, orderedIDs)
	if err != nil {
		return Collection{}, fmt.Errorf("reorder columns: %w", err)
	}
	return fromInternalCollection(col), nil
}

func fromInternalDocuments(docs []domdoc.Document) []Document {
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromInternalDocument(d))
	}
	return out
}
