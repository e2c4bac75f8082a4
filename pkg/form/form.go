// Package form holds per-document edit state: one {value, error} pair per
// field, validated fail-fast in registration order.
package form

import (
	"fmt"

	"github.com/otissv/fieldkit/pkg/field"
)

// Field declares one document field: its column identity, kind, rules and
// options, plus an optional starting value (nil falls back to the kind's
// initial state).
type Field struct {
	ID      string
	Name    string
	Kind    field.Type
	Rules   field.Rules
	Options field.Options
	Value   any
}

// State is the current {value, error} pair for one field.
type State struct {
	Value any
	Error string
}

// Result reports whole-form validation: either valid, or the first failing
// field in registration order. Later fields are not evaluated in that pass.
type Result struct {
	Valid   bool
	FieldID string
	Message string
}

// Form is the edit state for one document. It owns its state exclusively;
// Reset restores the snapshot taken at construction.
type Form struct {
	registry *field.Registry
	order    []string
	fields   map[string]Field
	state    map[string]State
	initial  map[string]State
}

// New builds a form over the given fields. Every kind must resolve in the
// registry and field ids must be unique.
func New(registry *field.Registry, fields ...Field) (*Form, error) {
	f := &Form{
		registry: registry,
		fields:   make(map[string]Field, len(fields)),
		state:    make(map[string]State, len(fields)),
		initial:  make(map[string]State, len(fields)),
	}
	for _, fd := range fields {
		if fd.ID == "" {
			return nil, fmt.Errorf("form field %q has no id", fd.Name)
		}
		if _, dup := f.fields[fd.ID]; dup {
			return nil, fmt.Errorf("duplicate form field id %q", fd.ID)
		}
		kind, err := registry.Resolve(fd.Kind)
		if err != nil {
			return nil, fmt.Errorf("form field %q: %w", fd.Name, err)
		}
		value := fd.Value
		if value == nil {
			value = kind.InitialState
		}
		f.order = append(f.order, fd.ID)
		f.fields[fd.ID] = fd
		f.state[fd.ID] = State{Value: value}
		f.initial[fd.ID] = State{Value: value}
	}
	return f, nil
}

// Set stages a new value for a field, clearing any stale error. Returns false
// when the field id is unknown.
func (f *Form) Set(id string, value any) bool {
	if _, ok := f.fields[id]; !ok {
		return false
	}
	f.state[id] = State{Value: value}
	return true
}

// State returns the current {value, error} pair for a field.
func (f *Form) State(id string) (State, bool) {
	s, ok := f.state[id]
	return s, ok
}

// Values returns the current value of every field keyed by field id.
func (f *Form) Values() map[string]any {
	values := make(map[string]any, len(f.order))
	for _, id := range f.order {
		values[id] = f.state[id].Value
	}
	return values
}

// FieldIDs returns the field ids in registration order.
func (f *Form) FieldIDs() []string {
	ids := make([]string, len(f.order))
	copy(ids, f.order)
	return ids
}

// Validate walks fields in registration order and stops at the first failure
// (fail-fast: it does not aggregate errors across fields). Values that pass
// are updated to their coerced form with the error cleared; the failing
// field keeps its error in the form state.
func (f *Form) Validate() Result {
	for _, id := range f.order {
		fd := f.fields[id]
		kind, err := f.registry.Resolve(fd.Kind)
		if err != nil {
			// The constructor resolved every kind; this only fires if the
			// registry changed identity, which the closed catalog forbids.
			return Result{FieldID: id, Message: err.Error()}
		}
		res := kind.Validate(f.state[id].Value, fd.Rules, fd.Name, fd.Options)
		f.state[id] = State{Value: res.Value, Error: res.Error}
		if res.Error != "" {
			return Result{FieldID: id, Message: res.Error}
		}
	}
	return Result{Valid: true}
}

// Apply surfaces a server-side validation result on the form. Only the first
// entry is attached and reported, matching the fail-fast contract.
func (f *Form) Apply(errs *field.FieldErrors) Result {
	first, ok := errs.First()
	if !ok {
		return Result{Valid: true}
	}
	for _, id := range f.order {
		if f.fields[id].Name == first.Path || id == first.Path {
			s := f.state[id]
			f.state[id] = State{Value: s.Value, Error: first.Message}
			return Result{FieldID: id, Message: first.Message}
		}
	}
	return Result{FieldID: first.Path, Message: first.Message}
}

// Reset restores every field to the snapshot taken at construction.
func (f *Form) Reset() {
	for id, s := range f.initial {
		f.state[id] = s
	}
}
