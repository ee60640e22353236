package billyfs

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	cloudpath "github.com/joshicola/cloud-path"
)

// File wraps billy.File to implement cloudpath.File. It stores the
// normalized path since billy.File.Name() may return a different form
// depending on the backing filesystem, and keeps a filesystem reference
// to support Stat, which billy.File does not provide.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

var (
	_ cloudpath.File = (*File)(nil)
	_ io.Seeker      = (*File)(nil)
)

// Read delegates to the underlying billy.File.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write delegates to the underlying billy.File.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close delegates to the underlying billy.File.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat returns metadata for the open file via the filesystem, since
// billy.File has no Stat of its own.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the path provided to Open.
func (f *File) Name() string {
	return f.name
}

// Seek delegates to the underlying billy.File.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Truncate delegates to the underlying billy.File.
func (f *File) Truncate(size int64) error {
	return f.file.Truncate(size)
}
