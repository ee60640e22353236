package cloudpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPure(t *testing.T) {
	tests := []struct {
		name string
		elem []string
		want string
	}{
		{"single absolute", []string{"/path/to/resource"}, "/path/to/resource"},
		{"joined segments", []string{"/data", "reports", "jan.csv"}, "/data/reports/jan.csv"},
		{"redundant separators", []string{"/data//reports/", "jan.csv"}, "/data/reports/jan.csv"},
		{"dot segments", []string{"/data/./reports/../archive"}, "/data/archive"},
		{"relative", []string{"data", "reports"}, "data/reports"},
		{"empty elements ignored", []string{"", "/data", "", "x"}, "/data/x"},
		{"no elements", nil, "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPure(tt.elem...).String())
		})
	}
}

func TestPurePathJoin(t *testing.T) {
	p := NewPure("/data")
	assert.Equal(t, "/data/a/b", p.Join("a", "b").String())
	assert.Equal(t, "/data", p.String(), "join does not mutate the receiver")
}

func TestPurePathNavigation(t *testing.T) {
	p := NewPure("/data/reports/jan.csv")
	assert.Equal(t, "jan.csv", p.Base())
	assert.Equal(t, "/data/reports", p.Dir().String())
	assert.Equal(t, "/", NewPure("/").Dir().String())
}

func TestPurePathEqual(t *testing.T) {
	assert.True(t, NewPure("/a//b").Equal(NewPure("/a/b")), "equality follows the normalized form")
	assert.False(t, NewPure("/a").Equal(NewPure("/b")))
}
