package hscode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "8471300000", "8471300000"},
		{"short code padded", "847130", "8471300000"},
		{"long code truncated", "847130000099", "8471300000"},
		{"dots stripped", "8471.30.00.00", "8471300000"},
		{"spaces and letters stripped", " 8471 30 ab", "8471300000"},
		{"empty becomes padding", "", "0000000000"},
		{"no digits becomes padding", "abc-def", "0000000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, CodeLength)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"8471300000", "847130", "8471.30", "", "xyz", "12345678901234"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "84713000", Prefix("8471.30.00.00", Prefix8Length))
	assert.Equal(t, "847130", Prefix("8471300000", Prefix6Length))
	assert.Equal(t, "8471300000", Prefix("847130", 12))
}

func TestHasDigits(t *testing.T) {
	assert.True(t, HasDigits("8471.30"))
	assert.False(t, HasDigits("n/a"))
	assert.False(t, HasDigits(""))
}
