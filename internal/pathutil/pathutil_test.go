package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "."},
		{"/", "/"},
		{"/a/b", "/a/b"},
		{"/a//b/", "/a/b"},
		{"a/./b/../c", "a/c"},
		{"./a", "a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{".", ""},
		{"/", ""},
		{"/a/b", "a/b"},
		{"a/b/", "a/b"},
		{"//a//b//", "a/b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.in), "NormalizeKey(%q)", tt.in)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		elem []string
		want string
	}{
		{[]string{"/a", "b"}, "/a/b"},
		{[]string{"/a/", "/b"}, "/a/b"},
		{[]string{"a", "", "b"}, "a/b"},
		{[]string{""}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Join(tt.elem...), "Join(%q)", tt.elem)
	}
}

func TestHasMeta(t *testing.T) {
	assert.True(t, HasMeta("*.txt"))
	assert.True(t, HasMeta("file?.log"))
	assert.True(t, HasMeta("[ab]"))
	assert.False(t, HasMeta("plain/path.txt"))
}
