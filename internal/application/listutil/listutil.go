package listutil

import (
	"net/url"
	"strings"
)

// FilterParams carries search parameters parsed from a request.
type FilterParams struct {
	Search string // free-text search query
}

// ParseFilterParams extracts the search term from URL query values.
// PRE: none
// POST: returns FilterParams; Search may be empty
func ParseFilterParams(q url.Values) FilterParams {
	return FilterParams{Search: q.Get("q")}
}

// MatchesAny reports whether any of the record's stringified fields
// contains the search term as a case-insensitive substring. An empty
// term matches every record. This is a whole-record scan, not a
// per-column filter.
// PRE: fields are the string forms of every field of one record
// POST: returns true if term is empty or contained in at least one field
func MatchesAny(fields []string, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
