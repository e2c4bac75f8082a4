package field

import "reflect"

// EditMode selects how an editor is presented by the host table.
type EditMode int

const (
	// Block renders the full editor directly (full-page editing).
	Block EditMode = iota
	// Inline renders a compact trigger that expands to the editor
	// (grid-cell editing via a popover).
	Inline
)

// UpdateFunc receives the committed value and its validation error. An empty
// error message means the host may persist the value.
type UpdateFunc func(value any, errorMessage string)

// Session is the interaction contract between one field editor and its host.
// Edits are staged in a local buffer decoupled from the committed value and
// applied on Commit (blur, Enter, or popover close depending on the kind).
type Session struct {
	kind       Kind
	columnName string
	rules      Rules
	options    Options
	mode       EditMode
	onUpdate   UpdateFunc

	committed any
	buffer    any
	staged    bool
	lastError string
}

// NewSession creates an edit session for one cell or form field. A nil value
// starts from the kind's initial state.
func NewSession(kind Kind, columnName string, value any, rules Rules, opts Options, mode EditMode, onUpdate UpdateFunc) *Session {
	if value == nil {
		value = kind.InitialState
	}
	return &Session{
		kind:       kind,
		columnName: columnName,
		rules:      rules,
		options:    opts,
		mode:       mode,
		onUpdate:   onUpdate,
		committed:  value,
	}
}

// Stage records an edit in the local buffer without committing it.
func (s *Session) Stage(value any) {
	s.buffer = value
	s.staged = true
}

// Discard drops the staged buffer, e.g. when a popover is dismissed.
func (s *Session) Discard() {
	s.buffer = nil
	s.staged = false
}

// Commit validates the staged value and notifies the host. The host is called
// only when the value changed from the last committed one or an error is
// present, so a newly-invalid but unchanged value still surfaces its error.
func (s *Session) Commit() Result {
	value := s.committed
	if s.staged {
		value = s.buffer
	}

	res := s.kind.Validate(value, s.rules, s.columnName, s.options)
	changed := !reflect.DeepEqual(res.Value, s.committed)
	if (changed || res.Error != "") && s.onUpdate != nil {
		s.onUpdate(res.Value, res.Error)
	}
	if res.Error == "" {
		s.committed = res.Value
	}
	s.lastError = res.Error
	s.staged = false
	s.buffer = nil
	return res
}

// Value returns the last committed value.
func (s *Session) Value() any { return s.committed }

// Error returns the error surfaced by the last commit.
func (s *Session) Error() string { return s.lastError }

// Mode returns the editor presentation mode.
func (s *Session) Mode() EditMode { return s.mode }

// OptionsUpdateFunc receives the merged option bag after each change.
type OptionsUpdateFunc func(Options)

// OptionsEditor mutates a column's option bag one key at a time. Every change
// merges a single key over the current bag, so sibling keys always survive.
type OptionsEditor struct {
	options  Options
	onUpdate OptionsUpdateFunc
}

// NewOptionsEditor creates an options editor over the column's current bag.
func NewOptionsEditor(opts Options, onUpdate OptionsUpdateFunc) *OptionsEditor {
	return &OptionsEditor{options: opts.Clone(), onUpdate: onUpdate}
}

// Set merges one changed key and notifies the host with the full merged bag.
func (e *OptionsEditor) Set(key OptionKey, value any) Options {
	merged := e.options.With(key, value)
	e.options = merged
	if e.onUpdate != nil {
		e.onUpdate(merged)
	}
	return merged
}

// Options returns the current bag.
func (e *OptionsEditor) Options() Options { return e.options.Clone() }
