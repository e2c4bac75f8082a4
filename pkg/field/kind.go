// Package field implements the typed field-kind catalog behind the
// collection dashboard: per-kind zero values, validation decision tables,
// editor sessions and option editing.
package field

// Type is the unique tag of a registered field kind. It is the discriminant
// for all polymorphic dispatch across the catalog.
type Type string

// Field kind tags.
const (
	Text          Type = "text"
	Title         Type = "title"
	Paragraph     Type = "paragraph"
	Number        Type = "number"
	Boolean       Type = "boolean"
	DateTime      Type = "dateTime"
	Email         Type = "email"
	URL           Type = "url"
	Tags          Type = "tags"
	Reference     Type = "reference"
	RichText      Type = "richtext"
	PrivateText   Type = "privateText"
	PrivateNumber Type = "privateNumber"
)

// Result carries a validated (and possibly coerced) value together with its
// user-facing error message. An empty message means the value is valid.
type Result struct {
	Value any
	Error string
}

// ValidateFunc checks a committed value against the column's rules. It is
// pure and total: all failure is reported through Result.Error, never by
// panicking.
type ValidateFunc func(value any, rules Rules, columnName string, opts Options) Result

// Kind is the uniform descriptor for one field type: display metadata, the
// zero value for a fresh column, the legal validation options with their
// defaults, and the validate function.
type Kind struct {
	Type         Type
	Title        string
	Description  string
	Icon         string
	InitialState any
	Rules        RuleSet
	Validate     ValidateFunc
}

// Derive returns a copy of the kind with overridden tag and display metadata.
// Validation behavior, options and the initial state are reused unchanged.
func (k Kind) Derive(t Type, title, description, icon string) Kind {
	d := k
	d.Type = t
	d.Title = title
	d.Description = description
	d.Icon = icon
	return d
}
