package cloudpath

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"

	"github.com/joshicola/cloud-path/internal/pathutil"
)

// Path composes a PurePath with a shared Backend reference. It is
// immutable: operations that conceptually mutate (Join, Rename) return a
// new Path. Every storage-touching method forwards the path's string
// form to the backend; nothing is cached, so no consistency is
// guaranteed between two calls against a backend whose state may change
// concurrently.
//
// The zero Path is unbound; storage operations on it fail with
// ErrNoBackend.
type Path struct {
	pure    PurePath
	backend Backend
}

func (p Path) componentPath() string     { return p.pure.raw }
func (p Path) componentBackend() Backend { return p.backend }

// ensure guards the delegate operations of unbound paths.
func (p Path) ensure(op string) error {
	if p.backend == nil {
		return &fs.PathError{Op: op, Path: p.pure.raw, Err: ErrNoBackend}
	}
	return nil
}

// at wraps a backend-returned entry as a Path sharing this backend.
func (p Path) at(entry string) Path {
	return Path{pure: PurePath{raw: pathutil.Normalize(entry)}, backend: p.backend}
}

// Backend returns the bound backend, or nil for an unbound path.
func (p Path) Backend() Backend {
	return p.backend
}

// Pure returns the underlying path value.
func (p Path) Pure() PurePath {
	return p.pure
}

// String returns the path string.
func (p Path) String() string {
	return p.pure.raw
}

// GoString returns a debug form identifying the value as a bound path.
func (p Path) GoString() string {
	return fmt.Sprintf("cloudpath.Path(%q)", p.pure.raw)
}

// Equal reports whether both paths have the same string form and
// reference the same backend.
func (p Path) Equal(other Path) bool {
	return p.pure.Equal(other.pure) && p.backend == other.backend
}

// Join returns a new Path with the given elements appended, sharing this
// path's backend. Join is pure and never touches storage.
func (p Path) Join(elem ...string) Path {
	return Path{pure: p.pure.Join(elem...), backend: p.backend}
}

// Exists reports whether the path exists on the backend.
func (p Path) Exists() (bool, error) {
	if err := p.ensure("exists"); err != nil {
		return false, err
	}
	return p.backend.Exists(p.pure.raw)
}

// IsDir reports whether the path is a directory on the backend.
func (p Path) IsDir() (bool, error) {
	if err := p.ensure("isdir"); err != nil {
		return false, err
	}
	return p.backend.IsDir(p.pure.raw)
}

// IsFile reports whether the path is a regular file on the backend.
func (p Path) IsFile() (bool, error) {
	if err := p.ensure("isfile"); err != nil {
		return false, err
	}
	return p.backend.IsFile(p.pure.raw)
}

// List returns the direct children of the path, each bound to this
// path's backend, in backend order.
func (p Path) List() ([]Path, error) {
	if err := p.ensure("list"); err != nil {
		return nil, err
	}
	entries, err := p.backend.List(p.pure.raw)
	if err != nil {
		return nil, err
	}
	children := make([]Path, len(entries))
	for i, entry := range entries {
		children[i] = p.at(entry)
	}
	return children, nil
}

// Iter returns a lazy sequence over the direct children of the path.
// The sequence is finite and single-use; the backend is queried when
// iteration starts, not when Iter is called.
func (p Path) Iter() iter.Seq2[Path, error] {
	return func(yield func(Path, error) bool) {
		if err := p.ensure("iter"); err != nil {
			yield(Path{}, err)
			return
		}
		entries, err := p.backend.List(p.pure.raw)
		if err != nil {
			yield(Path{}, err)
			return
		}
		for _, entry := range entries {
			if !yield(p.at(entry), nil) {
				return
			}
		}
	}
}

// Glob returns a lazy sequence of paths matching pattern under this
// path, in the order the backend reports them. The pattern is delegated
// as this path's string form plus "/" plus pattern.
//
// recursive is accepted for call-site compatibility but is not forwarded
// to the backend: the pattern language alone controls recursion (the
// shipped adapters support "**" for subtree matches).
func (p Path) Glob(pattern string, recursive bool) iter.Seq2[Path, error] {
	return func(yield func(Path, error) bool) {
		if err := p.ensure("glob"); err != nil {
			yield(Path{}, err)
			return
		}
		matches, err := p.backend.Glob(p.pure.raw + "/" + pattern)
		if err != nil {
			yield(Path{}, err)
			return
		}
		for _, match := range matches {
			if !yield(p.at(match), nil) {
				return
			}
		}
	}
}

// Mkdir creates the directory at this path, along with any missing
// parents. When existOk is false and the path already exists, Mkdir
// fails with ErrExist without invoking the backend's creation call.
//
// The existence pre-check is not atomic with the delegated creation; a
// concurrent writer can slip in between the two calls.
func (p Path) Mkdir(existOk bool) error {
	if err := p.ensure("mkdir"); err != nil {
		return err
	}
	if !existOk {
		exists, err := p.backend.Exists(p.pure.raw)
		if err != nil {
			return err
		}
		if exists {
			return &fs.PathError{Op: "mkdir", Path: p.pure.raw, Err: ErrExist}
		}
	}
	return p.backend.MakeDirs(p.pure.raw, existOk)
}

// Rmdir removes the directory at this path. The directory must be
// empty; there is no recursive variant.
func (p Path) Rmdir() error {
	if err := p.ensure("rmdir"); err != nil {
		return err
	}
	return p.backend.RemoveDir(p.pure.raw)
}

// Remove deletes the file at this path. When missingOk is true, a
// missing path is not an error; otherwise the backend's ErrNotExist
// propagates.
func (p Path) Remove(missingOk bool) error {
	if err := p.ensure("remove"); err != nil {
		return err
	}
	err := p.backend.Delete(p.pure.raw)
	if missingOk && errors.Is(err, ErrNotExist) {
		return nil
	}
	return err
}

// Open opens the path for reading. The caller owns the returned handle
// and must close it on every exit path.
func (p Path) Open() (File, error) {
	return p.OpenFile(os.O_RDONLY, 0)
}

// OpenFile opens the path with the given os.O_* flags. The caller owns
// the returned handle and must close it on every exit path.
func (p Path) OpenFile(flag int, perm fs.FileMode) (File, error) {
	if err := p.ensure("open"); err != nil {
		return nil, err
	}
	return p.backend.Open(p.pure.raw, flag, perm)
}

// ReadBytes reads the entire file at this path. The stream is opened,
// read to completion exactly once, and closed on success and failure
// alike.
func (p Path) ReadBytes() ([]byte, error) {
	f, err := p.Open()
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ReadText reads the entire file at this path as a string.
func (p Path) ReadText() (string, error) {
	data, err := p.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteBytes writes data to the file at this path, creating or
// truncating it. The stream is written exactly once and closed on
// success and failure alike.
func (p Path) WriteBytes(data []byte) error {
	f, err := p.OpenFile(os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// WriteText writes data to the file at this path, creating or
// truncating it.
func (p Path) WriteText(data string) error {
	return p.WriteBytes([]byte(data))
}

// Rename moves the file at this path to target and returns a new Path
// at target sharing this path's backend. The target is passed to the
// backend verbatim; a target implying a different backend is not
// validated here, and such moves are backend-defined.
func (p Path) Rename(target string) (Path, error) {
	if err := p.ensure("rename"); err != nil {
		return Path{}, err
	}
	if err := p.backend.Move(p.pure.raw, target); err != nil {
		return Path{}, err
	}
	return p.at(target), nil
}
