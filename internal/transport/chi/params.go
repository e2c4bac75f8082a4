package chi

import (
	"net/http"
	"strconv"

	documentuc "github.com/otissv/fieldkit/internal/usecase/document"
)

// Documented query-string defaults for document listing.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortBy    = "createdAt"
	DefaultDirection = "desc"
	DefaultNulls     = "last"
	DefaultLayout    = "grid"
)

// ListParams is the parsed document listing query string.
type ListParams struct {
	Query  documentuc.Query
	Layout string
}

// parseListParams reads page, limit, sortBy, direction, nulls and layout
// from the request, applying the documented defaults for absent or
// malformed values. The limit default can be raised or lowered per server
// through configuration.
func (s *Server) parseListParams(r *http.Request) (ListParams, error) {
	q := r.URL.Query()

	limitDefault := s.defaultLimit
	if limitDefault <= 0 {
		limitDefault = DefaultLimit
	}

	page := intParam(q.Get("page"), DefaultPage)
	limit := intParam(q.Get("limit"), limitDefault)
	sortBy := stringParam(q.Get("sortBy"), DefaultSortBy)
	direction := stringParam(q.Get("direction"), DefaultDirection)
	nulls := stringParam(q.Get("nulls"), DefaultNulls)
	layout := stringParam(q.Get("layout"), DefaultLayout)

	query, err := documentuc.NewQuery(page, limit, sortBy, direction, nulls)
	if err != nil {
		return ListParams{}, err
	}
	return ListParams{Query: query, Layout: layout}, nil
}

func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func stringParam(raw, def string) string {
	if raw == "" {
		return def
	}
	return raw
}
