package field

import (
	"errors"
	"testing"
)

func TestBuiltin_ContainsAllKinds(t *testing.T) {
	expected := []Type{
		Text, Title, Paragraph, Number, Boolean, DateTime,
		Email, URL, Tags, Reference, RichText, PrivateText, PrivateNumber,
	}

	r := Builtin()
	if r.Size() != len(expected) {
		t.Fatalf("expected %d kinds, got %d", len(expected), r.Size())
	}

	kinds := r.Kinds()
	for i, typ := range expected {
		if kinds[i].Type != typ {
			t.Errorf("expected kind %d to be %q, got %q", i, typ, kinds[i].Type)
		}
		if !r.Has(typ) {
			t.Errorf("expected registry to have %q", typ)
		}
	}
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	_, err := Builtin().Resolve("hologram")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !errors.Is(err, ErrUnknownFieldKind) {
		t.Errorf("expected ErrUnknownFieldKind, got %v", err)
	}
}

func TestRegistry_ResolveReturnsDescriptor(t *testing.T) {
	k, err := Builtin().Resolve(Number)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.Type != Number {
		t.Errorf("expected type %q, got %q", Number, k.Type)
	}
	if k.Title == "" || k.Icon == "" {
		t.Error("expected descriptor to carry title and icon")
	}
	if k.Validate == nil {
		t.Error("expected descriptor to carry a validate function")
	}
	if k.InitialState != 0 {
		t.Errorf("expected number initial state 0, got %v", k.InitialState)
	}
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(textKind(), textKind())
	if err == nil {
		t.Fatal("expected error for duplicate kind")
	}
}

func TestNewRegistry_RejectsMissingValidate(t *testing.T) {
	k := textKind()
	k.Validate = nil
	_, err := NewRegistry(k)
	if err == nil {
		t.Fatal("expected error for kind without validate function")
	}
}

func TestNewRegistry_RejectsEmptyTag(t *testing.T) {
	k := textKind()
	k.Type = ""
	_, err := NewRegistry(k)
	if err == nil {
		t.Fatal("expected error for kind without type tag")
	}
}

func TestKind_Derive(t *testing.T) {
	base := textKind()
	derived := base.Derive("custom", "Custom", "A custom kind", "star")

	if derived.Type != "custom" || derived.Title != "Custom" || derived.Icon != "star" {
		t.Errorf("unexpected derived descriptor: %+v", derived)
	}
	if derived.InitialState != base.InitialState {
		t.Error("expected derived kind to keep initial state")
	}

	// Derived kinds share the base validate behavior.
	res := derived.Validate("", Rules{Required: true}, "col", nil)
	if res.Error != "col field is required" {
		t.Errorf("unexpected error: %q", res.Error)
	}
}
