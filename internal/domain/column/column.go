package column

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/otissv/fieldkit/pkg/field"
)

// MaxNameLen is the hard ceiling on column name length. Deployments may
// tighten it through configuration but never exceed it.
const MaxNameLen = 64

// Column is an immutable value object describing one typed collection column.
// The kind tag is resolved against the field registry; options and rules are
// passed opaquely into the kind's validate function and editor.
type Column struct {
	id        string
	name      string
	fieldType field.Type
	options   field.Options
	rules     field.Rules
}

// New validates and creates a Column with a fresh id. Name must be non-empty,
// max 64 chars; the kind tag must resolve in the registry. Rules start from
// the kind's declared defaults and options start empty.
func New(name string, ft field.Type, registry *field.Registry) (Column, error) {
	if name == "" {
		return Column{}, fmt.Errorf("column name is required")
	}
	if len(name) > MaxNameLen {
		return Column{}, fmt.Errorf("column name %q too long (max %d)", name, MaxNameLen)
	}
	kind, err := registry.Resolve(ft)
	if err != nil {
		return Column{}, err
	}
	return Column{
		id:        uuid.NewString(),
		name:      name,
		fieldType: ft,
		options:   field.Options{},
		rules:     kind.Rules.DefaultRules(),
	}, nil
}

// Reconstruct creates a Column without validation (storage hydration).
func Reconstruct(id, name string, ft field.Type, opts field.Options, rules field.Rules) Column {
	return Column{id: id, name: name, fieldType: ft, options: opts, rules: rules}
}

// ID returns the column identifier.
func (c Column) ID() string { return c.id }

// Name returns the column's display name.
func (c Column) Name() string { return c.name }

// FieldType returns the column's field kind tag.
func (c Column) FieldType() field.Type { return c.fieldType }

// Options returns the kind-specific option bag.
func (c Column) Options() field.Options { return c.options.Clone() }

// Rules returns the validation option bag.
func (c Column) Rules() field.Rules { return c.rules }

// WithName returns a copy with the name replaced.
func (c Column) WithName(name string) Column {
	c.name = name
	return c
}

// WithOptions returns a copy with the option bag replaced.
func (c Column) WithOptions(opts field.Options) Column {
	c.options = opts.Clone()
	return c
}

// WithRules returns a copy with the validation rules replaced.
func (c Column) WithRules(rules field.Rules) Column {
	c.rules = rules
	return c
}
