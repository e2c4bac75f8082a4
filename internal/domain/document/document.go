package document

import (
	"fmt"
	"regexp"
	"time"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Document is one row of a collection: typed field values keyed by column id
// (immutable value object).
type Document struct {
	id        string
	values    map[string]any
	createdAt int64
	revision  int
}

// New validates and creates a Document.
// ID: ^[a-zA-Z0-9_-]+$, 1-256 chars.
func New(id string, values map[string]any) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if len(id) > 256 {
		return Document{}, fmt.Errorf("document ID too long (max 256)")
	}
	if !idRegex.MatchString(id) {
		return Document{}, fmt.Errorf("document ID must be alphanumeric with underscores and hyphens")
	}
	return Document{
		id:        id,
		values:    cloneValues(values),
		createdAt: time.Now().UnixMilli(),
		revision:  1,
	}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(id string, values map[string]any, createdAt int64, revision int) Document {
	return Document{id: id, values: values, createdAt: createdAt, revision: revision}
}

// ID returns the document identifier.
func (d Document) ID() string { return d.id }

// Values returns a copy of all field values keyed by column id.
func (d Document) Values() map[string]any { return cloneValues(d.values) }

// Value returns the value stored under a column id.
func (d Document) Value(columnID string) (any, bool) {
	v, ok := d.values[columnID]
	return v, ok
}

// CreatedAt returns the creation timestamp (unix millis).
func (d Document) CreatedAt() int64 { return d.createdAt }

// Revision returns the document version, bumped on every mutation.
func (d Document) Revision() int { return d.revision }

// WithValue returns a copy with one column's value replaced and the revision
// bumped. Sibling values survive.
func (d Document) WithValue(columnID string, value any) Document {
	values := cloneValues(d.values)
	values[columnID] = value
	d.values = values
	d.revision++
	return d
}

// WithoutColumn returns a copy with one column's value dropped.
func (d Document) WithoutColumn(columnID string) Document {
	values := cloneValues(d.values)
	delete(values, columnID)
	d.values = values
	d.revision++
	return d
}

func cloneValues(m map[string]any) map[string]any {
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
