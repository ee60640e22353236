package billyfs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seed populates a small tree for glob tests.
func seed(t *testing.T, b *FS, paths ...string) {
	t.Helper()
	for _, p := range paths {
		f, err := b.Open(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}
}

func TestGlob(t *testing.T) {
	b := NewMemory()
	seed(t, b,
		"/logs/app.log",
		"/logs/db.log",
		"/logs/readme.txt",
		"/logs/2024/jan.log",
		"/logs/2024/feb.log",
		"/data/a.csv",
	)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"star suffix", "/logs/*.log", []string{"/logs/app.log", "/logs/db.log"}},
		{"question mark", "/logs/2024/ja?.log", []string{"/logs/2024/jan.log"}},
		{"star directory", "/*/a.csv", []string{"/data/a.csv"}},
		{"no matches", "/logs/*.csv", nil},
		{"missing directory", "/nowhere/*.log", nil},
		{"literal existing", "/data/a.csv", []string{"/data/a.csv"}},
		{"literal missing", "/data/b.csv", nil},
		{
			"subtree",
			"/logs/**",
			[]string{"/logs/2024", "/logs/2024/feb.log", "/logs/2024/jan.log", "/logs/app.log", "/logs/db.log", "/logs/readme.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Glob(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGlobBadPattern(t *testing.T) {
	b := NewMemory()
	seed(t, b, "/x/a.txt")

	_, err := b.Glob("/x/[")
	assert.Error(t, err, "malformed patterns surface path.Match errors")
}
