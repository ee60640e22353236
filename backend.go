package cloudpath

import (
	"io"
	"io/fs"
)

// Backend is the storage contract a Path delegates to. Implementations
// cover hierarchical storage of any kind: local disk, in-memory trees,
// object stores. The core never constructs or owns a Backend; it only
// stores a shared reference and forwards calls. Many Path values may
// reference the same Backend concurrently, and thread-safety of that
// concurrent access is the backend's contract.
//
// All paths are POSIX-style: segments separated by forward slashes.
// Backends define their own path space (for example, object-store
// backends treat paths as bucket-relative keys).
type Backend interface {
	// Exists reports whether the path exists as a file or directory.
	Exists(path string) (bool, error)

	// IsDir reports whether the path exists and is a directory.
	// A missing path reports false with a nil error.
	IsDir(path string) (bool, error)

	// IsFile reports whether the path exists and is a regular file.
	// A missing path reports false with a nil error.
	IsFile(path string) (bool, error)

	// List returns the full paths of the direct children of the given
	// directory, in backend order.
	List(path string) ([]string, error)

	// Glob returns the full paths matching the given pattern, in backend
	// order. The pattern language is path.Match per segment; backends
	// may additionally support "**" for recursive matching.
	Glob(pattern string) ([]string, error)

	// MakeDirs creates the directory and any missing parents. When
	// existOk is false and the directory already exists, MakeDirs fails
	// with ErrExist.
	MakeDirs(path string, existOk bool) error

	// RemoveDir removes an empty directory. There is no recursive
	// variant.
	RemoveDir(path string) error

	// Delete removes the file at path. It fails with ErrNotExist when
	// the path is absent.
	Delete(path string) error

	// Open opens the path with the given os.O_* flags, returning a
	// stream handle. The caller owns the handle and must close it on
	// every exit path. perm applies only when the backend supports
	// permission bits and the call creates the file.
	Open(path string, flag int, perm fs.FileMode) (File, error)

	// Move moves src to dst. Whether the move is atomic is
	// backend-defined.
	Move(src, dst string) error
}

// File is an open stream handle returned by Backend.Open. It extends
// fs.File with write support so a single handle type serves both
// directions; backends reject reads on write-only handles and vice versa.
type File interface {
	fs.File
	io.Writer

	// Name returns the path provided to Open.
	Name() string
}
