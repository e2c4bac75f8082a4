package fieldkit

import (
	domcol "github.com/otissv/fieldkit/internal/domain/collection"
	domdoc "github.com/otissv/fieldkit/internal/domain/document"
	"github.com/otissv/fieldkit/pkg/field"
)

// ColumnSpec names a column to create.
type ColumnSpec struct {
	Name string
	Type field.Type
}

// Column describes one field of a collection schema.
type Column struct {
	ID      string
	Name    string
	Type    field.Type
	Options field.Options
	Rules   field.Rules
}

// Collection describes a schema and its revision.
type Collection struct {
	Name      string
	Columns   []Column
	CreatedAt int64
	Revision  int
}

// Document is one row of a collection keyed by column ID.
type Document struct {
	ID        string
	Values    map[string]any
	CreatedAt int64
	Revision  int
}

func fromInternalCollection(c domcol.Collection) Collection {
	cols := c.Columns()
	out := make([]Column, 0, len(cols))
	for _, col := range cols {
		out = append(out, Column{
			ID:      col.ID(),
			Name:    col.Name(),
			Type:    col.FieldType(),
			Options: col.Options(),
			Rules:   col.Rules(),
		})
	}
	return Collection{
		Name:      c.Name(),
		Columns:   out,
		CreatedAt: c.CreatedAt(),
		Revision:  c.Revision(),
	}
}

func fromInternalDocument(d domdoc.Document) Document {
	return Document{
		ID:        d.ID(),
		Values:    d.Values(),
		CreatedAt: d.CreatedAt(),
		Revision:  d.Revision(),
	}
}
