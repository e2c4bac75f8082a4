package collection

import (
	"context"
	"fmt"

	"github.com/otissv/fieldkit/internal/domain"
	domcol "github.com/otissv/fieldkit/internal/domain/collection"
	"github.com/otissv/fieldkit/internal/domain/column"
	"github.com/otissv/fieldkit/pkg/field"
)

// ColumnSpec declares one column of a new collection.
type ColumnSpec struct {
	Name string
	Type field.Type
}

// Service handles collection CRUD operations.
type Service struct {
	repo       Repository
	registry   *field.Registry
	maxColumns int
	maxNameLen int
}

// New creates a collection service.
func New(repo Repository, registry *field.Registry) *Service {
	return &Service{
		repo:       repo,
		registry:   registry,
		maxColumns: domcol.MaxColumns,
		maxNameLen: column.MaxNameLen,
	}
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

// Create validates and stores a new collection. Each column spec is resolved
// against the field registry and seeded with the kind's rule defaults.
func (s *Service) Create(ctx context.Context, name string, specs []ColumnSpec) (domcol.Collection, error) {
	if len(specs) > s.maxColumns {
		return domcol.Collection{}, fmt.Errorf("validate collection: %w: too many columns (max %d)", domain.ErrInvalidSchema, s.maxColumns)
	}
	columns := make([]column.Column, 0, len(specs))
	for _, spec := range specs {
		if len(spec.Name) > s.maxNameLen {
			return domcol.Collection{}, fmt.Errorf("validate column %q: %w: column name too long (max %d)", spec.Name, domain.ErrInvalidSchema, s.maxNameLen)
		}
		col, err := column.New(spec.Name, spec.Type, s.registry)
		if err != nil {
			return domcol.Collection{}, fmt.Errorf("validate column %q: %w: %w", spec.Name, domain.ErrInvalidSchema, err)
		}
		columns = append(columns, col)
	}

	col, err := domcol.New(name, columns)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("validate collection: %w: %w", domain.ErrInvalidSchema, err)
	}

	if err := s.repo.Create(ctx, col); err != nil {
		return domcol.Collection{}, fmt.Errorf("create collection: %w", err)
	}
	return col, nil
}

// Get retrieves a collection by name.
func (s *Service) Get(ctx context.Context, name string) (domcol.Collection, error) {
	col, err := s.repo.Get(ctx, name)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return col, nil
}

// List returns all collections.
func (s *Service) List(ctx context.Context) ([]domcol.Collection, error) {
	cols, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return cols, nil
}

// Rename changes a collection's name, keeping its columns and documents.
func (s *Service) Rename(ctx context.Context, name, newName string) (domcol.Collection, error) {
	col, err := s.repo.Rename(ctx, name, newName)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("rename collection: %w", err)
	}
	return col, nil
}

// Delete removes a collection and its documents.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}
