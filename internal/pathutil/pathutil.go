// Package pathutil provides POSIX-style path normalization and joining
// shared by the cloudpath core and the backend adapters.
package pathutil

import (
	gopath "path"
	"strings"
)

// Normalize cleans a path using pure slash semantics.
// Redundant separators are collapsed and "." / ".." elements are resolved
// lexically. A leading slash is preserved, a trailing slash is dropped.
// Returns "." for empty paths.
func Normalize(p string) string {
	if p == "" {
		return "."
	}
	return gopath.Clean(p)
}

// NormalizeKey normalizes a path into an object key:
// separators are collapsed and leading/trailing slashes are removed.
// Returns "" for empty paths, "." and "/".
func NormalizeKey(p string) string {
	if p == "" || p == "." {
		return ""
	}
	p = strings.Trim(gopath.Clean(p), "/")
	if p == "." {
		return ""
	}
	return p
}

// Join joins any number of path elements with forward slashes, ignoring
// empty elements, and normalizes the result. Unlike pathlib-style joining,
// an absolute later element does not reset the path; it is appended like
// any other segment.
func Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return gopath.Clean(strings.Join(parts, "/"))
}

// HasMeta reports whether the path contains glob metacharacters
// understood by path.Match.
func HasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[\\")
}
