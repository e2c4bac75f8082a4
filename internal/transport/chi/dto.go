package chi

import (
	domcol "github.com/otissv/fieldkit/internal/domain/collection"
	domdoc "github.com/otissv/fieldkit/internal/domain/document"
	"github.com/otissv/fieldkit/pkg/field"
)

// CollectionDTO is the wire shape of a collection schema.
type CollectionDTO struct {
	Name      string      `json:"name"`
	Columns   []ColumnDTO `json:"columns"`
	CreatedAt int64       `json:"createdAt"`
	Revision  int         `json:"revision"`
}

// ColumnDTO is the wire shape of a column definition.
type ColumnDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         field.Type    `json:"type"`
	FieldOptions field.Options `json:"fieldOptions"`
	Validation   field.Rules   `json:"validation"`
}

// DocumentDTO is the wire shape of a document row.
type DocumentDTO struct {
	ID        string         `json:"id"`
	Values    map[string]any `json:"values"`
	CreatedAt int64          `json:"createdAt"`
	Revision  int            `json:"revision"`
}

func collectionsToDTO(cols []domcol.Collection) []CollectionDTO {
	out := make([]CollectionDTO, 0, len(cols))
	for _, c := range cols {
		columns := make([]ColumnDTO, 0, len(c.Columns()))
		for _, col := range c.Columns() {
			columns = append(columns, ColumnDTO{
				ID:           col.ID(),
				Name:         col.Name(),
				Type:         col.FieldType(),
				FieldOptions: col.Options(),
				Validation:   col.Rules(),
			})
		}
		out = append(out, CollectionDTO{
			Name:      c.Name(),
			Columns:   columns,
			CreatedAt: c.CreatedAt(),
			Revision:  c.Revision(),
		})
	}
	return out
}

func documentsToDTO(docs []domdoc.Document) []DocumentDTO {
	out := make([]DocumentDTO, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentDTO{
			ID:        d.ID(),
			Values:    d.Values(),
			CreatedAt: d.CreatedAt(),
			Revision:  d.Revision(),
		})
	}
	return out
}
