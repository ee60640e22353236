package billyfs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	cloudpath "github.com/joshicola/cloud-path"
	"github.com/joshicola/cloud-path/internal/pathutil"
)

// errNotDir reports a directory operation against a non-directory.
var errNotDir = errors.New("not a directory")

// FS adapts a billy.Filesystem to the cloudpath.Backend contract.
type FS struct {
	bfs billy.Filesystem
}

var _ cloudpath.Backend = (*FS)(nil)

// NewLocal creates a disk-backed backend rooted at the given directory.
// All paths resolve inside root; ".." cannot escape it.
func NewLocal(root string) *FS {
	return &FS{bfs: osfs.New(root)}
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *FS {
	return &FS{bfs: memfs.New()}
}

// Unwrap returns the underlying billy.Filesystem for go-git integration.
func (b *FS) Unwrap() billy.Filesystem {
	return b.bfs
}

// Exists reports whether the path exists as a file or directory.
func (b *FS) Exists(path string) (bool, error) {
	_, err := b.bfs.Stat(pathutil.Normalize(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether the path exists and is a directory.
func (b *FS) IsDir(path string) (bool, error) {
	info, err := b.bfs.Stat(pathutil.Normalize(path))
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsFile reports whether the path exists and is a regular file.
func (b *FS) IsFile(path string) (bool, error) {
	info, err := b.bfs.Stat(pathutil.Normalize(path))
	if err == nil {
		return info.Mode().IsRegular(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// List returns the full paths of the direct children of the directory.
func (b *FS) List(path string) ([]string, error) {
	path = pathutil.Normalize(path)
	infos, err := b.bfs.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]string, len(infos))
	for i, info := range infos {
		entries[i] = pathutil.Join(path, info.Name())
	}
	return entries, nil
}

// MakeDirs creates the directory and any missing parents. When existOk
// is false and the path already exists, MakeDirs fails with ErrExist.
func (b *FS) MakeDirs(path string, existOk bool) error {
	path = pathutil.Normalize(path)
	if !existOk {
		if _, err := b.bfs.Stat(path); err == nil {
			return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
		} else if !os.IsNotExist(err) {
			return err
		}
	}
	return b.bfs.MkdirAll(path, 0o755)
}

// RemoveDir removes an empty directory. It refuses non-directories.
func (b *FS) RemoveDir(path string) error {
	path = pathutil.Normalize(path)
	info, err := b.bfs.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: path, Err: errNotDir}
	}
	return b.bfs.Remove(path)
}

// Delete removes the file (or empty directory) at path. A missing path
// fails with ErrNotExist, as reported by billy.
func (b *FS) Delete(path string) error {
	return b.bfs.Remove(pathutil.Normalize(path))
}

// Open opens the path with the given os.O_* flags.
func (b *FS) Open(path string, flag int, perm fs.FileMode) (cloudpath.File, error) {
	path = pathutil.Normalize(path)
	f, err := b.bfs.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: path}, nil
}

// Move renames src to dst. Parent directories of dst are created by
// billy as needed.
func (b *FS) Move(src, dst string) error {
	return b.bfs.Rename(pathutil.Normalize(src), pathutil.Normalize(dst))
}
