package resource

import "strings"

// Ref is the canonical URL of a single remote resource, used as its
// identity. The server issues it; the application never fabricates one.
type Ref string

// IsZero returns true if the ref is absent.
func (r Ref) IsZero() bool {
	return r == ""
}

// String returns the URL form of the ref.
func (r Ref) String() string {
	return string(r)
}

// LastSegment returns the final path segment of the canonical URL.
// It is meant for the export boundary only; everywhere else the full
// URL is the identity.
// PRE: none
// POST: returns "" for an absent ref or a ref ending in "/"
func (r Ref) LastSegment() string {
	s := strings.TrimRight(string(r), "/")
	i := strings.LastIndex(s, "/")
	if i < 0 {
		return s
	}
	return s[i+1:]
}
