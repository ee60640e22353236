package cloudpath

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"strconv"
)

// call records one delegate invocation on the spy backend.
type call struct {
	method string
	args   []string
}

// spyBackend is a scriptable Backend that records every delegate call so
// tests can assert exact forwarding and call counts.
type spyBackend struct {
	calls []call

	existsResult bool
	existsErr    error
	isDirResult  bool
	isDirErr     error
	isFileResult bool
	isFileErr    error
	listResult   []string
	listErr      error
	globResult   []string
	globErr      error
	makeDirsErr  error
	removeDirErr error
	deleteErr    error
	openFile     *spyFile
	openErr      error
	moveErr      error
}

func (s *spyBackend) record(method string, args ...string) {
	s.calls = append(s.calls, call{method: method, args: args})
}

func (s *spyBackend) count(method string) int {
	n := 0
	for _, c := range s.calls {
		if c.method == method {
			n++
		}
	}
	return n
}

func (s *spyBackend) Exists(path string) (bool, error) {
	s.record("exists", path)
	return s.existsResult, s.existsErr
}

func (s *spyBackend) IsDir(path string) (bool, error) {
	s.record("isdir", path)
	return s.isDirResult, s.isDirErr
}

func (s *spyBackend) IsFile(path string) (bool, error) {
	s.record("isfile", path)
	return s.isFileResult, s.isFileErr
}

func (s *spyBackend) List(path string) ([]string, error) {
	s.record("ls", path)
	return s.listResult, s.listErr
}

func (s *spyBackend) Glob(pattern string) ([]string, error) {
	s.record("glob", pattern)
	return s.globResult, s.globErr
}

func (s *spyBackend) MakeDirs(path string, existOk bool) error {
	s.record("makedirs", path, strconv.FormatBool(existOk))
	return s.makeDirsErr
}

func (s *spyBackend) RemoveDir(path string) error {
	s.record("rmdir", path)
	return s.removeDirErr
}

func (s *spyBackend) Delete(path string) error {
	s.record("delete", path)
	return s.deleteErr
}

func (s *spyBackend) Open(path string, flag int, _ fs.FileMode) (File, error) {
	s.record("open", path, strconv.Itoa(flag))
	if s.openErr != nil {
		return nil, s.openErr
	}
	if s.openFile == nil {
		s.openFile = &spyFile{name: path}
	}
	return s.openFile, nil
}

func (s *spyBackend) Move(src, dst string) error {
	s.record("move", src, dst)
	return s.moveErr
}

// spyFile is a scriptable stream handle tracking reads, writes, and
// close counts.
type spyFile struct {
	name     string
	contents []byte
	pos      int
	readErr  error
	written  bytes.Buffer
	writeErr error
	closes   int
	closeErr error
}

func (f *spyFile) Read(p []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	if f.pos >= len(f.contents) {
		return 0, io.EOF
	}
	n := copy(p, f.contents[f.pos:])
	f.pos += n
	return n, nil
}

func (f *spyFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.written.Write(p)
}

func (f *spyFile) Close() error {
	f.closes++
	return f.closeErr
}

func (f *spyFile) Stat() (fs.FileInfo, error) {
	return nil, errors.ErrUnsupported
}

func (f *spyFile) Name() string {
	return f.name
}
