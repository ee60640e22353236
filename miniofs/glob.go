package miniofs

import (
	"context"
	gopath "path"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/joshicola/cloud-path/internal/pathutil"
	"github.com/joshicola/cloud-path/miniofs/internal/errs"
)

// Glob returns the paths matching pattern. Matching is path.Match per
// segment, with "**" matching any number of segments. The listing is
// bounded by the literal prefix preceding the first metacharacter, so
// "reports/2024/*.csv" only lists under "reports/2024/". Directory
// markers match as directories (without the trailing slash).
func (m *FS) Glob(pattern string) ([]string, error) {
	ctx := context.Background()
	patKey := pathutil.NormalizeKey(pattern)

	listPrefix := m.key("/" + literalPrefix(patKey))
	if listPrefix != "" {
		listPrefix += "/"
	}

	var matches []string
	seen := make(map[string]bool)
	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    listPrefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, errs.PathError("glob", pattern, errs.Translate(object.Err))
		}
		candidate := pathutil.NormalizeKey(m.path(object.Key))
		ok, err := matchKey(patKey, candidate)
		if err != nil {
			return nil, errs.PathError("glob", pattern, err)
		}
		if ok && !seen[candidate] {
			seen[candidate] = true
			matches = append(matches, "/"+candidate)
		}
	}
	return matches, nil
}

// literalPrefix returns the metacharacter-free leading directories of a
// pattern key.
func literalPrefix(patKey string) string {
	segments := strings.Split(patKey, "/")
	for i, seg := range segments {
		if pathutil.HasMeta(seg) {
			return strings.Join(segments[:i], "/")
		}
	}
	if len(segments) <= 1 {
		return ""
	}
	return strings.Join(segments[:len(segments)-1], "/")
}

// matchKey matches a candidate key against a pattern key segment by
// segment. A pattern segment of "**" matches zero or more segments.
func matchKey(patKey, key string) (bool, error) {
	return matchSegments(strings.Split(patKey, "/"), strings.Split(key, "/"))
}

func matchSegments(pat, segs []string) (bool, error) {
	if len(pat) == 0 {
		return len(segs) == 0, nil
	}
	if pat[0] == "**" {
		for i := 0; i <= len(segs); i++ {
			ok, err := matchSegments(pat[1:], segs[i:])
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	}
	if len(segs) == 0 {
		return false, nil
	}
	ok, err := gopath.Match(pat[0], segs[0])
	if err != nil || !ok {
		return false, err
	}
	return matchSegments(pat[1:], segs[1:])
}
