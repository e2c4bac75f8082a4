package document

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/otissv/fieldkit/internal/domain"
	domcol "github.com/otissv/fieldkit/internal/domain/collection"
	"github.com/otissv/fieldkit/internal/domain/column"
	domdoc "github.com/otissv/fieldkit/internal/domain/document"
	"github.com/otissv/fieldkit/internal/metrics"
	"github.com/otissv/fieldkit/pkg/field"
)

// Service handles document rows and column operations for one collection at
// a time. Every value mutation is validated through the field registry before
// it reaches the repository.
type Service struct {
	docs     Repository
	colls    CollectionRepository
	registry   *field.Registry
	maxLimit   int
	maxColumns int
	maxNameLen int
}

// New creates a document service.
func New(docs Repository, colls CollectionRepository, registry *field.Registry) *Service {
	return &Service{
		docs:       docs,
		colls:      colls,
		registry:   registry,
		maxLimit:   100,
		maxColumns: domcol.MaxColumns,
		maxNameLen: column.MaxNameLen,
	}
}

// WithMaxLimit caps the page size accepted by List.
func (s *Service) WithMaxLimit(max int) *Service {
	if max > 0 {
		s.maxLimit = max
	}
	return s
}

// WithSchemaLimits tightens the column count and column name length caps
// below the domain ceilings. Values outside (0, ceiling] are ignored.
func (s *Service) WithSchemaLimits(maxColumns, maxNameLen int) *Service {
	if maxColumns > 0 && maxColumns <= domcol.MaxColumns {
		s.maxColumns = maxColumns
	}
	if maxNameLen > 0 && maxNameLen <= column.MaxNameLen {
		s.maxNameLen = maxNameLen
	}
	return s
}

// List returns one page of documents sorted per the query.
func (s *Service) List(ctx context.Context, collection string, q Query) ([]domdoc.Document, error) {
	col, err := s.colls.Get(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	docs, err := s.docs.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	s.sortDocuments(docs, col, q.SortBy, q.Direction, q.Nulls)

	limit := q.Limit
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	start := (q.Page - 1) * limit
	if start >= len(docs) {
		return []domdoc.Document{}, nil
	}
	end := start + limit
	if end > len(docs) {
		end = len(docs)
	}
	return docs[start:end], nil
}

// InsertRow creates a document seeded with each column's default value (the
// defaultValue option when set, the kind's initial state otherwise).
func (s *Service) InsertRow(ctx context.Context, collection string) (domdoc.Document, error) {
	col, err := s.colls.Get(ctx, collection)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get collection: %w", err)
	}

	values := make(map[string]any)
	for _, c := range col.Columns() {
		kind, err := s.registry.Resolve(c.FieldType())
		if err != nil {
			return domdoc.Document{}, fmt.Errorf("resolve column %q: %w", c.Name(), err)
		}
		if def, ok := c.Options()[field.OptionDefaultValue]; ok {
			values[c.ID()] = def
			continue
		}
		values[c.ID()] = kind.InitialState
	}

	doc, err := domdoc.New(uuid.NewString(), values)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("create document: %w", err)
	}
	if err := s.docs.Insert(ctx, collection, doc); err != nil {
		return domdoc.Document{}, fmt.Errorf("insert document: %w", err)
	}
	metrics.DocumentWritesTotal.WithLabelValues("insert").Inc()
	return doc, nil
}

// UpdateData validates one cell's value against its column's kind and
// persists it. A failed validation is returned as FieldErrors wrapped in
// ErrValidationFailed; nothing is persisted in that case.
func (s *Service) UpdateData(ctx context.Context, collection, docID, columnID string, value any) (domdoc.Document, error) {
	col, err := s.colls.Get(ctx, collection)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get collection: %w", err)
	}
	c, ok := col.ColumnByID(columnID)
	if !ok {
		return domdoc.Document{}, fmt.Errorf("column %q: %w", columnID, domain.ErrColumnNotFound)
	}
	kind, err := s.registry.Resolve(c.FieldType())
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("resolve column %q: %w", c.Name(), err)
	}

	res := kind.Validate(value, c.Rules(), c.Name(), c.Options())
	if res.Error != "" {
		metrics.ValidationChecksTotal.WithLabelValues(string(c.FieldType()), "invalid").Inc()
		errs := field.NewFieldErrors()
		errs.Add(c.Name(), res.Error)
		return domdoc.Document{}, fmt.Errorf("%w: %w", domain.ErrValidationFailed, errs)
	}
	metrics.ValidationChecksTotal.WithLabelValues(string(c.FieldType()), "valid").Inc()

	doc, err := s.docs.Get(ctx, collection, docID)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	doc = doc.WithValue(columnID, res.Value)
	if err := s.docs.Update(ctx, collection, doc); err != nil {
		return domdoc.Document{}, fmt.Errorf("update document: %w", err)
	}
	metrics.DocumentWritesTotal.WithLabelValues("update").Inc()
	return doc, nil
}

// DeleteRows removes one or more documents.
func (s *Service) DeleteRows(ctx context.Context, collection string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.docs.Delete(ctx, collection, ids...); err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	metrics.DocumentWritesTotal.WithLabelValues("delete").Inc()
	return nil
}

// InsertColumn appends a typed column to the schema and backfills every
// existing document with the kind's initial state.
func (s *Service) InsertColumn(ctx context.Context, collection, name string, ft field.Type) (domcol.Collection, error) {
	col, err := s.colls.Get(ctx, collection)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	if len(col.Columns()) >= s.maxColumns {
		return domcol.Collection{}, fmt.Errorf("add column: %w: too many columns (max %d)", domain.ErrInvalidSchema, s.maxColumns)
	}
	if len(name) > s.maxNameLen {
		return domcol.Collection{}, fmt.Errorf("validate column: %w: column name %q too long (max %d)", domain.ErrInvalidSchema, name, s.maxNameLen)
	}
	newCol, err := column.New(name, ft, s.registry)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("validate column: %w: %w", domain.ErrInvalidSchema, err)
	}
	kind, err := s.registry.Resolve(ft)
	if err != nil {
		return domcol.Collection{}, err
	}

	updated, err := col.WithColumns(append(col.Columns(), newCol))
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("add column: %w: %w", domain.ErrInvalidSchema, err)
	}
	if err := s.colls.Update(ctx, updated); err != nil {
		return domcol.Collection{}, fmt.Errorf("update collection: %w", err)
	}

	if err := s.backfill(ctx, collection, newCol.ID(), kind.InitialState); err != nil {
		return domcol.Collection{}, err
	}
	return updated, nil
}

// ColumnChange describes a partial column update. Nil fields are unchanged;
// Options entries are merged key-by-key over the existing bag so sibling
// option keys always survive.
type ColumnChange struct {
	Name    *string
	Options field.Options
	Rules   *field.Rules
}

// UpdateColumn applies a partial change to one column definition.
func (s *Service) UpdateColumn(ctx context.Context, collection, columnID string, change ColumnChange) (domcol.Collection, error) {
	col, err := s.colls.Get(ctx, collection)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("get collection: %w", err)
	}

	columns := col.Columns()
	found := false
	for i, c := range columns {
		if c.ID() != columnID {
			continue
		}
		if change.Name != nil {
			if len(*change.Name) > s.maxNameLen {
				return domcol.Collection{}, fmt.Errorf("rename column: %w: column name %q too long (max %d)", domain.ErrInvalidSchema, *change.Name, s.maxNameLen)
			}
			c = c.WithName(*change.Name)
		}
		if len(change.Options) > 0 {
			merged := c.Options()
			for key, v := range change.Options {
				merged = merged.With(key, v)
			}
			c = c.WithOptions(merged)
		}
		if change.Rules != nil {
			c = c.WithRules(*change.Rules)
		}
		columns[i] = c
		found = true
		break
	}
	if !found {
		return domcol.Collection{}, fmt.Errorf("column %q: %w", columnID, domain.ErrColumnNotFound)
	}

	updated, err := col.WithColumns(columns)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("update column: %w: %w", domain.ErrInvalidSchema, err)
	}
	if err := s.colls.Update(ctx, updated); err != nil {
		return domcol.Collection{}, fmt.Errorf("update collection: %w", err)
	}
	return updated, nil
}

// DeleteColumn removes a column from the schema and drops its values from
// every document.
func (s *Service) DeleteColumn(ctx context.Context, collection, columnID string) (domcol.Collection, error) {
	col, err := s.colls.Get(ctx, collection)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	if _, ok := col.ColumnByID(columnID); !ok {
		return domcol.Collection{}, fmt.Errorf("column %q: %w", columnID, domain.ErrColumnNotFound)
	}

	columns := make([]column.Column, 0, len(col.Columns()))
	for _, c := range col.Columns() {
		if c.ID() != columnID {
			columns = append(columns, c)
		}
	}
	updated, err := col.WithColumns(columns)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("delete column: %w: %w", domain.ErrInvalidSchema, err)
	}
	if err := s.colls.Update(ctx, updated); err != nil {
		return domcol.Collection{}, fmt.Errorf("update collection: %w", err)
	}

	docs, err := s.docs.List(ctx, collection)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("list documents: %w", err)
	}
	for _, doc := range docs {
		if _, ok := doc.Value(columnID); !ok {
			continue
		}
		if err := s.docs.Update(ctx, collection, doc.WithoutColumn(columnID)); err != nil {
			return domcol.Collection{}, fmt.Errorf("drop column values: %w", err)
		}
	}
	return updated, nil
}

// SortColumn returns all documents ordered by one column.
func (s *Service) SortColumn(ctx context.Context, collection, columnID, direction string) ([]domdoc.Document, error) {
	col, err := s.colls.Get(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	c, ok := col.ColumnByID(columnID)
	if !ok {
		return nil, fmt.Errorf("column %q: %w", columnID, domain.ErrColumnNotFound)
	}
	q, err := NewQuery(0, 0, c.Name(), direction, "")
	if err != nil {
		return nil, err
	}

	docs, err := s.docs.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	s.sortDocuments(docs, col, q.SortBy, q.Direction, q.Nulls)
	return docs, nil
}

// UpdateColumnOrder reorders the schema's columns. The ids must be a
// permutation of the current column ids.
func (s *Service) UpdateColumnOrder(ctx context.Context, collection string, orderedIDs []string) (domcol.Collection, error) {
	col, err := s.colls.Get(ctx, collection)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	current := col.Columns()
	if len(orderedIDs) != len(current) {
		return domcol.Collection{}, fmt.Errorf("column order must list all %d columns: %w", len(current), domain.ErrInvalidSchema)
	}

	columns := make([]column.Column, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		c, ok := col.ColumnByID(id)
		if !ok {
			return domcol.Collection{}, fmt.Errorf("column %q: %w", id, domain.ErrColumnNotFound)
		}
		columns = append(columns, c)
	}
	updated, err := col.WithColumns(columns)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("reorder columns: %w: %w", domain.ErrInvalidSchema, err)
	}
	if err := s.colls.Update(ctx, updated); err != nil {
		return domcol.Collection{}, fmt.Errorf("update collection: %w", err)
	}
	return updated, nil
}

// backfill writes a value under columnID into every document missing it.
func (s *Service) backfill(ctx context.Context, collection, columnID string, value any) error {
	docs, err := s.docs.List(ctx, collection)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	for _, doc := range docs {
		if _, ok := doc.Value(columnID); ok {
			continue
		}
		if err := s.docs.Update(ctx, collection, doc.WithValue(columnID, value)); err != nil {
			return fmt.Errorf("backfill column: %w", err)
		}
	}
	return nil
}

// sortDocuments orders docs by a column name (or the creation timestamp),
// grouping missing values first or last per nulls.
func (s *Service) sortDocuments(docs []domdoc.Document, col domcol.Collection, sortBy, direction, nulls string) {
	columnID := ""
	if sortBy != CreatedAtColumn {
		if c, ok := col.ColumnByName(sortBy); ok {
			columnID = c.ID()
		} else if c, ok := col.ColumnByID(sortBy); ok {
			columnID = c.ID()
		}
	}

	sort.SliceStable(docs, func(i, j int) bool {
		a, aOK := sortValue(docs[i], sortBy, columnID)
		b, bOK := sortValue(docs[j], sortBy, columnID)
		if aOK != bOK {
			if nulls == NullsFirst {
				return !aOK
			}
			return aOK
		}
		if !aOK {
			return false
		}
		less := compareValues(a, b) < 0
		if direction == DirectionDesc {
			return !less && compareValues(a, b) != 0
		}
		return less
	})
}

func sortValue(doc domdoc.Document, sortBy, columnID string) (any, bool) {
	if sortBy == CreatedAtColumn {
		return doc.CreatedAt(), true
	}
	if columnID == "" {
		return nil, false
	}
	v, ok := doc.Value(columnID)
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return nil, false
	}
	return v, true
}

func compareValues(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
