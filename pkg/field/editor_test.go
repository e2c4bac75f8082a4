package field

import (
	"reflect"
	"testing"
)

type updateCall struct {
	value any
	err   string
}

func TestSession_CommitNotifiesOnChange(t *testing.T) {
	var calls []updateCall
	kind := resolve(t, Text)
	s := NewSession(kind, "name", "old", Rules{}, nil, Inline, func(value any, errorMessage string) {
		calls = append(calls, updateCall{value, errorMessage})
	})

	s.Stage("new")
	res := s.Commit()

	if res.Error != "" {
		t.Fatalf("unexpected error: %q", res.Error)
	}
	if len(calls) != 1 {
		t.Fatalf("expected 1 update call, got %d", len(calls))
	}
	if calls[0].value != "new" || calls[0].err != "" {
		t.Errorf("unexpected call: %+v", calls[0])
	}
	if s.Value() != "new" {
		t.Errorf("expected committed value %q, got %v", "new", s.Value())
	}
}

func TestSession_CommitSkipsUnchangedValue(t *testing.T) {
	var calls []updateCall
	kind := resolve(t, Text)
	s := NewSession(kind, "name", "same", Rules{}, nil, Inline, func(value any, errorMessage string) {
		calls = append(calls, updateCall{value, errorMessage})
	})

	s.Stage("same")
	s.Commit()

	if len(calls) != 0 {
		t.Errorf("expected no update for unchanged value, got %d calls", len(calls))
	}
}

func TestSession_CommitAlwaysSurfacesError(t *testing.T) {
	var calls []updateCall
	kind := resolve(t, Text)
	s := NewSession(kind, "name", "", Rules{Required: true}, nil, Block, func(value any, errorMessage string) {
		calls = append(calls, updateCall{value, errorMessage})
	})

	// The staged value equals the committed one, but the error must still
	// reach the host.
	s.Stage("")
	res := s.Commit()

	if res.Error != "name field is required" {
		t.Fatalf("unexpected error: %q", res.Error)
	}
	if len(calls) != 1 || calls[0].err != "name field is required" {
		t.Errorf("expected the error to be surfaced, got calls %+v", calls)
	}
	if s.Error() != "name field is required" {
		t.Errorf("expected session to remember the error, got %q", s.Error())
	}
}

func TestSession_FailedCommitKeepsCommittedValue(t *testing.T) {
	kind := resolve(t, Text)
	s := NewSession(kind, "name", "good", Rules{MinLength: 3, MaxLength: 10}, nil, Inline, nil)

	s.Stage("x")
	res := s.Commit()

	if res.Error == "" {
		t.Fatal("expected validation error")
	}
	if s.Value() != "good" {
		t.Errorf("expected committed value to survive a failed commit, got %v", s.Value())
	}
}

func TestSession_DiscardDropsBuffer(t *testing.T) {
	var calls int
	kind := resolve(t, Text)
	s := NewSession(kind, "name", "kept", Rules{}, nil, Inline, func(any, string) { calls++ })

	s.Stage("thrown away")
	s.Discard()
	s.Commit()

	if calls != 0 {
		t.Errorf("expected no update after discard, got %d calls", calls)
	}
	if s.Value() != "kept" {
		t.Errorf("expected value %q, got %v", "kept", s.Value())
	}
}

func TestSession_NilValueStartsFromInitialState(t *testing.T) {
	kind := resolve(t, Number)
	s := NewSession(kind, "count", nil, Rules{}, nil, Block, nil)

	if s.Value() != 0 {
		t.Errorf("expected initial state 0, got %v", s.Value())
	}
	if s.Mode() != Block {
		t.Errorf("expected Block mode, got %v", s.Mode())
	}
}

func TestOptionsEditor_SiblingKeysSurvive(t *testing.T) {
	initial := Options{
		OptionDefaultValue:   "a",
		OptionIsRange:        true,
		OptionNumberOfMonths: 2,
		OptionShowTime:       false,
	}

	var notified Options
	e := NewOptionsEditor(initial, func(merged Options) { notified = merged })

	got := e.Set(OptionShowTime, true)

	want := Options{
		OptionDefaultValue:   "a",
		OptionIsRange:        true,
		OptionNumberOfMonths: 2,
		OptionShowTime:       true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected merged bag:\ngot:  %v\nwant: %v", got, want)
	}
	if !reflect.DeepEqual(notified, want) {
		t.Errorf("expected host to receive the full merged bag, got %v", notified)
	}

	// The source bag is untouched.
	if initial[OptionShowTime] != false {
		t.Error("expected the original bag to be unchanged")
	}
}

func TestOptionsEditor_SequentialSets(t *testing.T) {
	e := NewOptionsEditor(Options{OptionDefaultValue: "x"}, nil)

	e.Set(OptionIsRange, true)
	e.Set(OptionNumberOfMonths, 3)

	got := e.Options()
	if got.String(OptionDefaultValue) != "x" || !got.Bool(OptionIsRange) || got.Int(OptionNumberOfMonths) != 3 {
		t.Errorf("unexpected bag after sequential sets: %v", got)
	}
}
