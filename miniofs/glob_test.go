package miniofs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralPrefix(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"reports/2024/*.csv", "reports/2024"},
		{"reports/*/jan.csv", "reports"},
		{"*.csv", ""},
		{"reports/2024/jan.csv", "reports/2024"},
		{"jan.csv", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, literalPrefix(tt.pattern), "literalPrefix(%q)", tt.pattern)
	}
}

func TestMatchKey(t *testing.T) {
	tests := []struct {
		pattern string
		key     string
		want    bool
	}{
		{"reports/*.csv", "reports/jan.csv", true},
		{"reports/*.csv", "reports/2024/jan.csv", false},
		{"reports/*/jan.csv", "reports/2024/jan.csv", true},
		{"reports/**", "reports/2024/jan.csv", true},
		{"reports/**", "reports", true},
		{"reports/**/jan.csv", "reports/a/b/jan.csv", true},
		{"reports/**/jan.csv", "reports/jan.csv", true},
		{"**", "anything/at/all", true},
		{"reports/ja?.csv", "reports/jan.csv", true},
		{"reports/*.csv", "invoices/jan.csv", false},
	}
	for _, tt := range tests {
		got, err := matchKey(tt.pattern, tt.key)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "matchKey(%q, %q)", tt.pattern, tt.key)
	}
}

func TestMatchKeyBadPattern(t *testing.T) {
	_, err := matchKey("reports/[", "reports/x")
	assert.Error(t, err)
}
