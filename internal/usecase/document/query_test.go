package document

import "testing"

func TestNewQuery_Defaults(t *testing.T) {
	q, err := NewQuery(0, 0, "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Page != 1 {
		t.Errorf("expected page 1, got %d", q.Page)
	}
	if q.Limit != 10 {
		t.Errorf("expected limit 10, got %d", q.Limit)
	}
	if q.SortBy != CreatedAtColumn {
		t.Errorf("expected sortBy %q, got %q", CreatedAtColumn, q.SortBy)
	}
	if q.Direction != DirectionDesc {
		t.Errorf("expected direction desc, got %q", q.Direction)
	}
	if q.Nulls != NullsLast {
		t.Errorf("expected nulls last, got %q", q.Nulls)
	}
}

func TestNewQuery_NegativeValuesFallBack(t *testing.T) {
	q, err := NewQuery(-3, -1, "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Page != 1 || q.Limit != 10 {
		t.Errorf("expected defaults, got page %d limit %d", q.Page, q.Limit)
	}
}

func TestNewQuery_InvalidDirection(t *testing.T) {
	if _, err := NewQuery(1, 10, "", "sideways", ""); err == nil {
		t.Error("expected error for invalid direction")
	}
}

func TestNewQuery_InvalidNulls(t *testing.T) {
	if _, err := NewQuery(1, 10, "", "", "middle"); err == nil {
		t.Error("expected error for invalid nulls placement")
	}
}

func TestNewQuery_ExplicitValuesKept(t *testing.T) {
	q, err := NewQuery(3, 25, "title", DirectionAsc, NullsFirst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Page != 3 || q.Limit != 25 || q.SortBy != "title" || q.Direction != DirectionAsc || q.Nulls != NullsFirst {
		t.Errorf("unexpected query: %+v", q)
	}
}
