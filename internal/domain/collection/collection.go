package collection

import (
	"fmt"
	"regexp"
	"time"

	"github.com/otissv/fieldkit/internal/domain/column"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxColumns is the hard ceiling on columns per collection. Deployments may
// tighten it through configuration but never exceed it.
const MaxColumns = 64

// Collection is the schema aggregate: a named, ordered set of typed columns
// (immutable value object).
type Collection struct {
	name      string
	columns   []column.Column
	createdAt int64
	revision  int
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("collection name is required")
	}
	if len(name) > 64 {
		return fmt.Errorf("collection name too long (max 64)")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("collection name must be alphanumeric with underscores and hyphens")
	}
	return nil
}

func validateColumns(columns []column.Column) error {
	if len(columns) > MaxColumns {
		return fmt.Errorf("too many columns (max %d)", MaxColumns)
	}
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if seen[c.Name()] {
			return fmt.Errorf("duplicate column name: %s", c.Name())
		}
		seen[c.Name()] = true
	}
	return nil
}

// New validates and creates a Collection.
// Name: ^[a-zA-Z0-9_-]+$, 1-64 chars. Columns: unique names, max 64.
func New(name string, columns []column.Column) (Collection, error) {
	if err := validateName(name); err != nil {
		return Collection{}, err
	}
	if err := validateColumns(columns); err != nil {
		return Collection{}, err
	}
	return Collection{
		name:      name,
		columns:   columns,
		createdAt: time.Now().UnixMilli(),
		revision:  1,
	}, nil
}

// Reconstruct creates a Collection without validation (storage hydration).
func Reconstruct(name string, columns []column.Column, createdAt int64, revision int) Collection {
	return Collection{name: name, columns: columns, createdAt: createdAt, revision: revision}
}

// Name returns the collection name.
func (c Collection) Name() string { return c.name }

// Columns returns the column definitions in display order.
func (c Collection) Columns() []column.Column {
	cols := make([]column.Column, len(c.columns))
	copy(cols, c.columns)
	return cols
}

// CreatedAt returns the creation timestamp (unix millis).
func (c Collection) CreatedAt() int64 { return c.createdAt }

// Revision returns the schema version, bumped on every mutation.
func (c Collection) Revision() int { return c.revision }

// ColumnByID looks up a column by id.
func (c Collection) ColumnByID(id string) (column.Column, bool) {
	for _, col := range c.columns {
		if col.ID() == id {
			return col, true
		}
	}
	return column.Column{}, false
}

// ColumnByName looks up a column by display name.
func (c Collection) ColumnByName(name string) (column.Column, bool) {
	for _, col := range c.columns {
		if col.Name() == name {
			return col, true
		}
	}
	return column.Column{}, false
}

// WithName returns a renamed copy with the revision bumped.
func (c Collection) WithName(name string) (Collection, error) {
	if err := validateName(name); err != nil {
		return Collection{}, err
	}
	c.name = name
	c.revision++
	return c, nil
}

// WithColumns returns a copy with the column set replaced and the revision
// bumped.
func (c Collection) WithColumns(columns []column.Column) (Collection, error) {
	if err := validateColumns(columns); err != nil {
		return Collection{}, err
	}
	c.columns = columns
	c.revision++
	return c, nil
}
