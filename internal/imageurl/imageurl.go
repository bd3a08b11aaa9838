// Package imageurl normalizes stored image references into absolute URLs.
//
// The catalog stores whatever the admin upload flow produced over the
// years: bare "/uploads/..." paths, full URLs, and a malformed hybrid
// where a full URL was glued onto the uploads prefix
// ("/uploads/https://cdn.example.com/x.jpg"). API responses always carry
// absolute URLs, so every read path goes through Resolve.
package imageurl

import "strings"

const uploadsPrefix = "/uploads/"

// Resolver rewrites stored image references against the service's public
// base URL.
type Resolver struct {
	baseURL string
}

// NewResolver creates a Resolver. Trailing slashes on baseURL are ignored.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve turns one stored reference into an absolute URL.
//
// Rules, in order:
//  1. "" stays ""
//  2. "/uploads/https://..." is a legacy double-prefix artifact; the
//     embedded URL wins
//  3. anything already absolute passes through
//  4. relative paths are joined onto the base URL
func (r *Resolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}

	if rest, ok := strings.CutPrefix(ref, uploadsPrefix); ok {
		if isAbsolute(rest) {
			return rest
		}
	}

	if isAbsolute(ref) {
		return ref
	}

	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return r.baseURL + ref
}

// ResolveAll maps Resolve over a slice, returning a new slice. A nil input
// stays nil.
func (r *Resolver) ResolveAll(refs []string) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = r.Resolve(ref)
	}
	return out
}

// ResolveFirst returns the resolved first entry, or nil when the slice is
// empty. Suggestion payloads use this for their nullable image field.
func (r *Resolver) ResolveFirst(refs []string) *string {
	if len(refs) == 0 {
		return nil
	}
	resolved := r.Resolve(refs[0])
	return &resolved
}

func isAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
