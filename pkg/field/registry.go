package field

import (
	"errors"
	"fmt"
)

// ErrUnknownFieldKind signals a lookup for a kind tag that is not registered.
var ErrUnknownFieldKind = errors.New("unknown field kind")

// Registry maps kind tags to their descriptors. It is written once at
// construction and read-only afterwards, so a single instance is safe to
// share process-wide.
type Registry struct {
	kinds map[Type]Kind
	order []Type
}

// NewRegistry builds a registry from a fixed set of kinds. Kind tags must be
// unique and every kind must carry a validate function.
func NewRegistry(kinds ...Kind) (*Registry, error) {
	r := &Registry{kinds: make(map[Type]Kind, len(kinds))}
	for _, k := range kinds {
		if k.Type == "" {
			return nil, fmt.Errorf("field kind %q has no type tag", k.Title)
		}
		if k.Validate == nil {
			return nil, fmt.Errorf("field kind %q has no validate function", k.Type)
		}
		if _, dup := r.kinds[k.Type]; dup {
			return nil, fmt.Errorf("duplicate field kind %q", k.Type)
		}
		r.kinds[k.Type] = k
		r.order = append(r.order, k.Type)
	}
	return r, nil
}

// Resolve returns the descriptor for a kind tag, or ErrUnknownFieldKind.
func (r *Registry) Resolve(t Type) (Kind, error) {
	k, ok := r.kinds[t]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownFieldKind, t)
	}
	return k, nil
}

// Has reports whether a kind tag is registered.
func (r *Registry) Has(t Type) bool {
	_, ok := r.kinds[t]
	return ok
}

// Kinds returns descriptors in registration order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.order))
	for _, t := range r.order {
		kinds = append(kinds, r.kinds[t])
	}
	return kinds
}

// Size returns the number of registered kinds.
func (r *Registry) Size() int { return len(r.order) }

var builtin = mustRegistry(
	textKind(),
	titleKind(),
	paragraphKind(),
	numberKind(),
	booleanKind(),
	dateTimeKind(),
	emailKind(),
	urlKind(),
	tagsKind(),
	referenceKind(),
	richTextKind(),
	privateTextKind(),
	privateNumberKind(),
)

// Builtin returns the fixed catalog of field kinds. The catalog is closed:
// there is no runtime registration beyond this set.
func Builtin() *Registry { return builtin }

func mustRegistry(kinds ...Kind) *Registry {
	r, err := NewRegistry(kinds...)
	if err != nil {
		panic(err)
	}
	return r
}
