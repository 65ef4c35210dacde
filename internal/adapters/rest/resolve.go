package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"personaltrainer/internal/domain/resource"
)

// Fallback labels for an unresolved customer. The two call sites differ
// deliberately: the training table shows "Unknown", the calendar drops
// the suffix entirely. Keep them distinct.
const (
	FallbackUnknown = "Unknown"
	FallbackEmpty   = ""
)

// Candidate field paths for name extraction, tried in order. The
// referenced resource's shape is not stable across API versions, so the
// whole chain must be preserved rather than any single key.
var (
	firstnamePaths = [][]string{{"firstname"}, {"firstName"}, {"customer", "firstname"}}
	lastnamePaths  = [][]string{{"lastname"}, {"lastName"}, {"customer", "lastname"}}
)

// ResolveCustomerName fetches the resource behind ref and extracts a
// display name. Every failure mode — absent ref, network error, parse
// error, no extractable name — degrades to the given fallback label;
// nothing propagates to the caller.
// PRE: fallback is the call site's configured label
// POST: returns "first last" (single-space joined, even when one side is
// empty) or fallback
func (c *Client) ResolveCustomerName(ctx context.Context, ref resource.Ref, fallback string) string {
	if ref.IsZero() {
		return fallback
	}

	doc, err := c.fetchDocument(ctx, ref.String())
	if err != nil {
		slog.Warn("customer resolution failed", "url", ref.String(), "error", err)
		return fallback
	}

	first := firstNonEmpty(doc, firstnamePaths)
	last := firstNonEmpty(doc, lastnamePaths)
	if first == "" && last == "" {
		return fallback
	}
	return first + " " + last
}

func (c *Client) fetchDocument(ctx context.Context, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Op: "resolving customer", Status: resp.Status}
	}
	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// firstNonEmpty walks each candidate path through nested objects and
// returns the first non-empty string value found.
// PRE: paths is an ordered list of field paths for one logical attribute
// POST: returns "" when no path yields a non-empty string
func firstNonEmpty(doc map[string]any, paths [][]string) string {
	for _, path := range paths {
		if v := lookupPath(doc, path); v != "" {
			return v
		}
	}
	return ""
}

func lookupPath(doc map[string]any, path []string) string {
	cur := any(doc)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = obj[key]
	}
	s, _ := cur.(string)
	return s
}
