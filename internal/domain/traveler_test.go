package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVIP(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want bool
	}{
		{"James Stone", true},
		{"JOE SMITH", true},
		{"sara jones", true},
		{"Jane Doe", false},
		{"Sam Lee", false},
		{"Ann Lee", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsVIP(tc.name), "IsVIP(%q)", tc.name)
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()

	n, ok := FullName("Ann", "Lee")
	assert.True(t, ok)
	assert.Equal(t, TravelerName("Ann Lee"), n)

	// Parts are joined verbatim, not normalized.
	n, ok = FullName("Mary Ann", "Lee")
	assert.True(t, ok)
	assert.Equal(t, TravelerName("Mary Ann Lee"), n)

	// Whitespace is a non-empty name part.
	n, ok = FullName(" ", "Lee")
	assert.True(t, ok)
	assert.Equal(t, TravelerName("  Lee"), n)

	for _, in := range [][2]string{{"", "Lee"}, {"Ann", ""}, {"", ""}} {
		_, ok := FullName(in[0], in[1])
		assert.False(t, ok, "FullName(%q, %q)", in[0], in[1])
	}
}
