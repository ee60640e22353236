package billyfs

import (
	"os"
	gopath "path"
	"sort"

	"github.com/joshicola/cloud-path/internal/pathutil"
)

// Glob returns the full paths matching pattern. Matching is path.Match
// per segment; a final segment of "**" matches every descendant of the
// directories the preceding segments match. Directories named by
// non-matching or missing pattern prefixes are skipped, not errors.
// Results are sorted.
func (b *FS) Glob(pattern string) ([]string, error) {
	matches, err := b.glob(pathutil.Normalize(pattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func (b *FS) glob(pattern string) ([]string, error) {
	if !pathutil.HasMeta(pattern) {
		ok, err := b.Exists(pattern)
		if err != nil || !ok {
			return nil, err
		}
		return []string{pattern}, nil
	}

	dir := gopath.Dir(pattern)
	base := gopath.Base(pattern)

	dirs := []string{dir}
	if pathutil.HasMeta(dir) {
		candidates, err := b.glob(dir)
		if err != nil {
			return nil, err
		}
		dirs = dirs[:0]
		for _, c := range candidates {
			isDir, err := b.IsDir(c)
			if err != nil {
				return nil, err
			}
			if isDir {
				dirs = append(dirs, c)
			}
		}
	}

	var matches []string
	for _, d := range dirs {
		if base == "**" {
			if err := b.collect(d, &matches); err != nil {
				return nil, err
			}
			continue
		}
		infos, err := b.bfs.ReadDir(d)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, info := range infos {
			ok, err := gopath.Match(base, info.Name())
			if err != nil {
				return nil, err
			}
			if ok {
				matches = append(matches, pathutil.Join(d, info.Name()))
			}
		}
	}
	return matches, nil
}

// collect appends every descendant of dir to matches.
func (b *FS) collect(dir string, matches *[]string) error {
	infos, err := b.bfs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, info := range infos {
		full := pathutil.Join(dir, info.Name())
		*matches = append(*matches, full)
		if info.IsDir() {
			if err := b.collect(full, matches); err != nil {
				return err
			}
		}
	}
	return nil
}
