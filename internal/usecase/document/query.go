package document

import "fmt"

// Sort directions and null placement.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
	NullsFirst    = "first"
	NullsLast     = "last"

	// CreatedAtColumn is the synthetic sort key for the creation timestamp.
	CreatedAtColumn = "createdAt"
)

// Query is a validated document listing request.
type Query struct {
	Page      int
	Limit     int
	SortBy    string
	Direction string
	Nulls     string
}

// NewQuery validates and normalizes listing parameters. Zero page/limit fall
// back to 1 and 10; direction defaults to desc, nulls to last, sortBy to the
// creation timestamp.
func NewQuery(page, limit int, sortBy, direction, nulls string) (Query, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if sortBy == "" {
		sortBy = CreatedAtColumn
	}
	switch direction {
	case "":
		direction = DirectionDesc
	case DirectionAsc, DirectionDesc:
	default:
		return Query{}, fmt.Errorf("invalid sort direction %q", direction)
	}
	switch nulls {
	case "":
		nulls = NullsLast
	case NullsFirst, NullsLast:
	default:
		return Query{}, fmt.Errorf("invalid nulls placement %q", nulls)
	}
	return Query{Page: page, Limit: limit, SortBy: sortBy, Direction: direction, Nulls: nulls}, nil
}
