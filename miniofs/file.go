package miniofs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	gopath "path"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/joshicola/cloud-path/miniofs/internal/errs"
)

// fileInfo implements fs.FileInfo for object metadata.
type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return fi.size }
func (fi *fileInfo) Mode() fs.FileMode  { return 0o644 }
func (fi *fileInfo) ModTime() time.Time { return fi.modTime }
func (fi *fileInfo) IsDir() bool        { return false }
func (fi *fileInfo) Sys() any           { return nil }

// readFile streams an object from the backend. Seek is supported via
// the SDK's range requests.
type readFile struct {
	obj  *minio.Object
	info *fileInfo
	name string
}

var _ io.Seeker = (*readFile)(nil)

// newReadFile stats the key up front so a missing object surfaces as
// ErrNotExist at open time rather than on first read.
func newReadFile(ctx context.Context, m *FS, key, name string) (*readFile, error) {
	stat, err := m.statKey(ctx, key)
	if err != nil {
		return nil, errs.PathError("open", name, err)
	}
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.PathError("open", name, errs.Translate(err))
	}
	return &readFile{
		obj:  obj,
		name: name,
		info: &fileInfo{name: gopath.Base(name), size: stat.Size, modTime: stat.LastModified},
	}, nil
}

func (f *readFile) Read(p []byte) (int, error) {
	n, err := f.obj.Read(p)
	if err == nil || errors.Is(err, io.EOF) {
		return n, err
	}
	return n, errs.PathError("read", f.name, errs.Translate(err))
}

func (f *readFile) Write([]byte) (int, error) {
	return 0, errs.PathError("write", f.name, fs.ErrInvalid)
}

func (f *readFile) Seek(offset int64, whence int) (int64, error) {
	return f.obj.Seek(offset, whence)
}

func (f *readFile) Close() error {
	return f.obj.Close()
}

func (f *readFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

func (f *readFile) Name() string {
	return f.name
}

// writeFile buffers writes in memory and uploads the payload on Close.
// Contents become visible to readers only after Close returns.
type writeFile struct {
	m      *FS
	key    string
	name   string
	buf    bytes.Buffer
	closed bool
}

func newWriteFile(m *FS, key, name string) *writeFile {
	return &writeFile{m: m, key: key, name: name}
}

func (f *writeFile) Read([]byte) (int, error) {
	return 0, errs.PathError("read", f.name, fs.ErrInvalid)
}

func (f *writeFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, errs.PathError("write", f.name, fs.ErrClosed)
	}
	return f.buf.Write(p)
}

func (f *writeFile) Close() error {
	if f.closed {
		return errs.PathError("close", f.name, fs.ErrClosed)
	}
	f.closed = true
	_, err := f.m.client.PutObject(
		context.Background(),
		f.m.bucket,
		f.key,
		bytes.NewReader(f.buf.Bytes()),
		int64(f.buf.Len()),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return errs.PathError("close", f.name, errs.Translate(err))
	}
	return nil
}

func (f *writeFile) Stat() (fs.FileInfo, error) {
	return &fileInfo{name: gopath.Base(f.name), size: int64(f.buf.Len()), modTime: time.Now()}, nil
}

func (f *writeFile) Name() string {
	return f.name
}
