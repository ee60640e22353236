package backendtest

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cloudpath "github.com/joshicola/cloud-path"
)

// writeFile writes data through the backend's stream interface.
func writeFile(t *testing.T, b cloudpath.Backend, path string, data []byte) {
	t.Helper()
	f, err := b.Open(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	require.NoError(t, err, "open %s for writing", path)
	_, err = f.Write(data)
	require.NoError(t, err, "write %s", path)
	require.NoError(t, f.Close(), "close %s", path)
}

// readFile reads the full contents through the backend's stream interface.
func readFile(t *testing.T, b cloudpath.Backend, path string) []byte {
	t.Helper()
	f, err := b.Open(path, os.O_RDONLY, 0)
	require.NoError(t, err, "open %s for reading", path)
	defer func() { require.NoError(t, f.Close(), "close %s", path) }()
	data, err := io.ReadAll(f)
	require.NoError(t, err, "read %s", path)
	return data
}

// mkParent creates the parent directory unless directories are virtual.
func mkParent(t *testing.T, b cloudpath.Backend, dir string, config Config) {
	t.Helper()
	if config.VirtualDirectories {
		return
	}
	require.NoError(t, b.MakeDirs(dir, true), "mkdirs %s", dir)
}

func testRoundTrip(t *testing.T, b cloudpath.Backend, config Config) {
	mkParent(t, b, "/data", config)

	payload := []byte("round трип\x00\x01binary payload")
	writeFile(t, b, "/data/blob.bin", payload)

	got := readFile(t, b, "/data/blob.bin")
	assert.Equal(t, payload, got, "payload must survive a write/read round trip")
}

func testExists(t *testing.T, b cloudpath.Backend, config Config) {
	exists, err := b.Exists("/data/missing.txt")
	require.NoError(t, err)
	assert.False(t, exists, "missing path must not exist")

	mkParent(t, b, "/data", config)
	writeFile(t, b, "/data/present.txt", []byte("x"))

	exists, err = b.Exists("/data/present.txt")
	require.NoError(t, err)
	assert.True(t, exists, "written file must exist")

	exists, err = b.Exists("/data")
	require.NoError(t, err)
	assert.True(t, exists, "parent directory must exist")
}

func testFileType(t *testing.T, b cloudpath.Backend, config Config) {
	mkParent(t, b, "/types", config)
	writeFile(t, b, "/types/file.txt", []byte("x"))
	require.NoError(t, b.MakeDirs("/types/dir", true))

	isFile, err := b.IsFile("/types/file.txt")
	require.NoError(t, err)
	assert.True(t, isFile)

	isDir, err := b.IsDir("/types/file.txt")
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = b.IsDir("/types/dir")
	require.NoError(t, err)
	assert.True(t, isDir)

	isFile, err = b.IsFile("/types/dir")
	require.NoError(t, err)
	assert.False(t, isFile)

	isFile, err = b.IsFile("/types/nothing")
	require.NoError(t, err, "missing path is not an error for type checks")
	assert.False(t, isFile)

	isDir, err = b.IsDir("/types/nothing")
	require.NoError(t, err)
	assert.False(t, isDir)
}

func testList(t *testing.T, b cloudpath.Backend, config Config) {
	mkParent(t, b, "/ls", config)
	writeFile(t, b, "/ls/a.txt", []byte("a"))
	writeFile(t, b, "/ls/b.txt", []byte("b"))

	entries, err := b.List("/ls")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/ls/a.txt", "/ls/b.txt"}, entries,
		"entries must be full paths of the direct children")
}

func testGlob(t *testing.T, b cloudpath.Backend, config Config) {
	mkParent(t, b, "/gl", config)
	writeFile(t, b, "/gl/a.txt", []byte("a"))
	writeFile(t, b, "/gl/b.txt", []byte("b"))
	writeFile(t, b, "/gl/c.log", []byte("c"))

	t.Run("Star", func(t *testing.T) {
		matches, err := b.Glob("/gl/*.txt")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"/gl/a.txt", "/gl/b.txt"}, matches)
	})

	t.Run("NoMatch", func(t *testing.T) {
		matches, err := b.Glob("/gl/*.csv")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("Subtree", func(t *testing.T) {
		mkParent(t, b, "/gl/sub", config)
		writeFile(t, b, "/gl/sub/d.txt", []byte("d"))

		matches, err := b.Glob("/gl/**")
		require.NoError(t, err)
		assert.Subset(t, matches, []string{"/gl/a.txt", "/gl/sub/d.txt"},
			"** must match across directory levels")
	})
}

func testMakeDirs(t *testing.T, b cloudpath.Backend, _ Config) {
	require.NoError(t, b.MakeDirs("/md/nested/dir", false),
		"parents are created as needed")

	err := b.MakeDirs("/md/nested/dir", false)
	require.Error(t, err, "existing directory without existOk must fail")
	assert.ErrorIs(t, err, fs.ErrExist)

	assert.NoError(t, b.MakeDirs("/md/nested/dir", true),
		"existing directory with existOk succeeds")
}

func testRemoveDir(t *testing.T, b cloudpath.Backend, config Config) {
	require.NoError(t, b.MakeDirs("/rd/empty", true))
	require.NoError(t, b.RemoveDir("/rd/empty"))

	isDir, err := b.IsDir("/rd/empty")
	require.NoError(t, err)
	assert.False(t, isDir, "removed directory must be gone")

	assert.Error(t, b.RemoveDir("/rd/empty"), "removing a missing directory must fail")

	require.NoError(t, b.MakeDirs("/rd/full", true))
	writeFile(t, b, "/rd/full/child.txt", []byte("x"))
	assert.Error(t, b.RemoveDir("/rd/full"), "removing a non-empty directory must fail")
}

func testDelete(t *testing.T, b cloudpath.Backend, config Config) {
	mkParent(t, b, "/del", config)
	writeFile(t, b, "/del/victim.txt", []byte("x"))

	require.NoError(t, b.Delete("/del/victim.txt"))

	exists, err := b.Exists("/del/victim.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	err = b.Delete("/del/victim.txt")
	require.Error(t, err, "deleting a missing path must fail")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func testMove(t *testing.T, b cloudpath.Backend, config Config) {
	mkParent(t, b, "/mv", config)
	writeFile(t, b, "/mv/src.txt", []byte("moving payload"))

	require.NoError(t, b.Move("/mv/src.txt", "/mv/dst.txt"))

	exists, err := b.Exists("/mv/src.txt")
	require.NoError(t, err)
	assert.False(t, exists, "source must be gone after a move")

	assert.Equal(t, []byte("moving payload"), readFile(t, b, "/mv/dst.txt"))
}

func testOpenMissing(t *testing.T, b cloudpath.Backend, _ Config) {
	f, err := b.Open("/nowhere/missing.txt", os.O_RDONLY, 0)
	if f != nil {
		defer func() { _ = f.Close() }()
	}
	require.Error(t, err, "opening a missing path for reading must fail")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "error must match ErrNotExist, got %v", err)
}
