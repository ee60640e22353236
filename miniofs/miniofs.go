package miniofs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"

	cloudpath "github.com/joshicola/cloud-path"
	"github.com/joshicola/cloud-path/internal/pathutil"
	"github.com/joshicola/cloud-path/miniofs/internal/errs"
)

// errNotEmpty reports removal of a directory that still has children.
var errNotEmpty = errors.New("directory not empty")

// FS implements cloudpath.Backend for MinIO/S3-compatible storage.
type FS struct {
	client          *minio.Client
	bucket          string
	prefix          string
	moveConcurrency int
}

var _ cloudpath.Backend = (*FS)(nil)

// New creates a MinIO-backed storage backend.
func New(cfg Config) (*FS, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
	}

	moveConcurrency := cfg.MaxMoveConcurrency
	if moveConcurrency == 0 {
		moveConcurrency = 10
	}

	return &FS{
		client:          client,
		bucket:          cfg.Bucket,
		prefix:          pathutil.NormalizeKey(cfg.Prefix),
		moveConcurrency: moveConcurrency,
	}, nil
}

// key maps a backend path to its object key under the configured prefix.
func (m *FS) key(path string) string {
	k := pathutil.NormalizeKey(path)
	switch {
	case m.prefix == "":
		return k
	case k == "":
		return m.prefix
	default:
		return m.prefix + "/" + k
	}
}

// path maps an object key back to the backend path space.
func (m *FS) path(key string) string {
	if m.prefix != "" {
		key = strings.TrimPrefix(key, m.prefix+"/")
	}
	return "/" + strings.TrimSuffix(key, "/")
}

// statKey stats a single object key with errors translated.
func (m *FS) statKey(ctx context.Context, key string) (minio.ObjectInfo, error) {
	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return minio.ObjectInfo{}, errs.Translate(err)
	}
	return info, nil
}

// hasChildren reports whether any object key lives under key + "/",
// excluding the directory marker itself.
func (m *FS) hasChildren(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prefix := ""
	if key != "" {
		prefix = key + "/"
	}
	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return false, errs.Translate(object.Err)
		}
		if object.Key == prefix {
			continue
		}
		return true, nil
	}
	return false, nil
}

// Exists reports whether the path exists as an object or a directory.
func (m *FS) Exists(path string) (bool, error) {
	isFile, err := m.IsFile(path)
	if err != nil || isFile {
		return isFile, err
	}
	return m.IsDir(path)
}

// IsFile reports whether the path names an object.
func (m *FS) IsFile(path string) (bool, error) {
	key := m.key(path)
	if key == "" {
		return false, nil
	}
	_, err := m.statKey(context.Background(), key)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether the path names a directory: the bucket root, a
// marker object, or a prefix with objects under it.
func (m *FS) IsDir(path string) (bool, error) {
	ctx := context.Background()
	key := m.key(path)
	if key == "" {
		return true, nil
	}
	if _, err := m.statKey(ctx, key+"/"); err == nil {
		return true, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	return m.hasChildren(ctx, key)
}

// List returns the direct children of the directory. Children are
// reported in listing order; virtual subdirectories appear without a
// trailing slash. A missing directory fails with ErrNotExist.
func (m *FS) List(path string) ([]string, error) {
	ctx := context.Background()
	key := m.key(path)
	prefix := ""
	if key != "" {
		prefix = key + "/"
	}

	var entries []string
	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if object.Err != nil {
			return nil, errs.PathError("ls", path, errs.Translate(object.Err))
		}
		if object.Key == prefix {
			continue // directory marker
		}
		entries = append(entries, m.path(object.Key))
	}

	if len(entries) == 0 {
		isDir, err := m.IsDir(path)
		if err != nil {
			return nil, err
		}
		if !isDir {
			return nil, errs.PathError("ls", path, fs.ErrNotExist)
		}
	}
	return entries, nil
}

// MakeDirs creates a zero-byte directory marker so existence and type
// checks behave. Parents need no explicit creation; prefixes are
// virtual. When existOk is false and the directory exists, MakeDirs
// fails with ErrExist.
func (m *FS) MakeDirs(path string, existOk bool) error {
	ctx := context.Background()
	key := m.key(path)
	if key == "" {
		return nil // bucket root always exists
	}
	if !existOk {
		exists, err := m.Exists(path)
		if err != nil {
			return err
		}
		if exists {
			return errs.PathError("mkdir", path, fs.ErrExist)
		}
	}
	_, err := m.client.PutObject(ctx, m.bucket, key+"/", bytes.NewReader(nil), 0, minio.PutObjectOptions{})
	if err != nil {
		return errs.PathError("mkdir", path, errs.Translate(err))
	}
	return nil
}

// RemoveDir removes an empty directory. Non-empty directories and
// missing paths are errors.
func (m *FS) RemoveDir(path string) error {
	ctx := context.Background()
	key := m.key(path)

	children, err := m.hasChildren(ctx, key)
	if err != nil {
		return err
	}
	if children {
		return errs.PathError("rmdir", path, errNotEmpty)
	}

	if _, err := m.statKey(ctx, key+"/"); err != nil {
		return errs.PathError("rmdir", path, err)
	}
	if err := m.client.RemoveObject(ctx, m.bucket, key+"/", minio.RemoveObjectOptions{}); err != nil {
		return errs.PathError("rmdir", path, errs.Translate(err))
	}
	return nil
}

// Delete removes the object at path. S3 deletes are silently idempotent,
// so the key is stat'd first to surface ErrNotExist for missing paths.
func (m *FS) Delete(path string) error {
	ctx := context.Background()
	key := m.key(path)

	if _, err := m.statKey(ctx, key); err != nil {
		return errs.PathError("delete", path, err)
	}
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errs.PathError("delete", path, errs.Translate(err))
	}
	return nil
}

// Open opens the object for reading or writing depending on flag.
// Write handles buffer in memory and upload on Close.
func (m *FS) Open(path string, flag int, _ fs.FileMode) (cloudpath.File, error) {
	key := m.key(path)
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		return newWriteFile(m, key, path), nil
	}
	return newReadFile(context.Background(), m, key, path)
}

// Move moves a single object or a whole directory prefix via
// copy-then-delete. Directory copies run concurrently, bounded by the
// configured move concurrency. The move is not atomic.
func (m *FS) Move(src, dst string) error {
	ctx := context.Background()
	srcKey := m.key(src)
	dstKey := m.key(dst)

	if _, err := m.statKey(ctx, srcKey); err == nil {
		return m.moveObject(ctx, src, srcKey, dstKey)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return errs.PathError("move", src, err)
	}

	isDir, err := m.IsDir(src)
	if err != nil {
		return err
	}
	if !isDir {
		return errs.PathError("move", src, fs.ErrNotExist)
	}
	return m.movePrefix(ctx, src, srcKey, dstKey)
}

func (m *FS) moveObject(ctx context.Context, src, srcKey, dstKey string) error {
	_, err := m.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: m.bucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: m.bucket, Object: srcKey},
	)
	if err != nil {
		return errs.PathError("move", src, errs.Translate(err))
	}
	if err := m.client.RemoveObject(ctx, m.bucket, srcKey, minio.RemoveObjectOptions{}); err != nil {
		return errs.PathError("move", src, errs.Translate(err))
	}
	return nil
}

func (m *FS) movePrefix(ctx context.Context, src, srcKey, dstKey string) error {
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var keys []string
	for object := range m.client.ListObjects(listCtx, m.bucket, minio.ListObjectsOptions{
		Prefix:    srcKey + "/",
		Recursive: true,
	}) {
		if object.Err != nil {
			return errs.PathError("move", src, errs.Translate(object.Err))
		}
		keys = append(keys, object.Key)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.moveConcurrency)
	for _, key := range keys {
		newKey := dstKey + "/" + strings.TrimPrefix(key, srcKey+"/")
		g.Go(func() error {
			_, err := m.client.CopyObject(gctx,
				minio.CopyDestOptions{Bucket: m.bucket, Object: newKey},
				minio.CopySrcOptions{Bucket: m.bucket, Object: key},
			)
			return errs.Translate(err)
		})
	}
	if err := g.Wait(); err != nil {
		return errs.PathError("move", src, err)
	}

	// Sources are removed only after every copy landed.
	for _, key := range keys {
		if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return errs.PathError("move", src, errs.Translate(err))
		}
	}
	return nil
}
