// Package media resolves stored file paths against the media base URL.
package media

import "strings"

// Resolver turns upstream-relative media paths into renderable URLs.
type Resolver struct {
	baseURL string
}

// NewResolver builds a resolver for the given media base URL.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// URL resolves path: empty stays empty, absolute (http-prefixed) paths pass
// through unchanged, everything else is prefixed with the media base.
func (r *Resolver) URL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return r.baseURL + path
}
