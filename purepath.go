package cloudpath

import (
	gopath "path"

	"github.com/joshicola/cloud-path/internal/pathutil"
)

// PurePath is an immutable, backend-independent path value. It holds one
// normalized POSIX-style path string; equality and string form derive
// solely from that string. PurePath values support only pure operations
// and never touch storage.
type PurePath struct {
	raw string
}

// NewPure joins the given elements into a PurePath. Empty elements are
// ignored and the result is normalized (redundant separators collapsed,
// "." and ".." resolved lexically).
func NewPure(elem ...string) PurePath {
	return PurePath{raw: pathutil.Normalize(pathutil.Join(elem...))}
}

// Join returns a new PurePath with the given elements appended.
func (p PurePath) Join(elem ...string) PurePath {
	return NewPure(append([]string{p.raw}, elem...)...)
}

// String returns the path string.
func (p PurePath) String() string {
	return p.raw
}

// Base returns the last path segment.
func (p PurePath) Base() string {
	return gopath.Base(p.raw)
}

// Dir returns the path with its last segment removed.
func (p PurePath) Dir() PurePath {
	return PurePath{raw: gopath.Dir(p.raw)}
}

// Equal reports whether both paths have the same normalized string form.
func (p PurePath) Equal(other PurePath) bool {
	return p.raw == other.raw
}

func (p PurePath) componentPath() string     { return p.raw }
func (p PurePath) componentBackend() Backend { return nil }
