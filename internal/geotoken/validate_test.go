package geotoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		token string
		valid bool
	}{
		{
			name:  "canonical lowercase token",
			token: "#geo9c3xgp",
			valid: true,
		},
		{
			name:  "uppercase token",
			token: "#GEO9C3XGP",
			valid: true,
		},
		{
			name:  "mixed case token",
			token: "#GeO9c3XgP",
			valid: true,
		},
		{
			name:  "all digit body",
			token: "#geo234567",
			valid: true,
		},
		{
			name:  "empty string",
			token: "",
			valid: false,
		},
		{
			name:  "prefix only",
			token: "#geo",
			valid: false,
		},
		{
			name:  "five symbol body",
			token: "#geo9c3xg",
			valid: false,
		},
		{
			name:  "seven symbol body",
			token: "#geo9c3xgp2",
			valid: false,
		},
		{
			name:  "excluded digit one",
			token: "#geo9c3xg1",
			valid: false,
		},
		{
			name:  "excluded digit one uppercase",
			token: "#GEO9C3XG1",
			valid: false,
		},
		{
			name:  "excluded digit zero",
			token: "#geo0c3xgp",
			valid: false,
		},
		{
			name:  "vowel in body",
			token: "#geo9c3xga",
			valid: false,
		},
		{
			name:  "missing hash",
			token: "geo9c3xgpp",
			valid: false,
		},
		{
			name:  "wrong prefix word",
			token: "#gps9c3xgp",
			valid: false,
		},
		{
			name:  "trailing space",
			token: "#geo9c3xg ",
			valid: false,
		},
		{
			name:  "multibyte character in body",
			token: "#geo9c3xé",
			valid: false,
		},
		{
			name:  "unrelated hashtag",
			token: "#infrastructure",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.token))
		})
	}
}

func TestIsValid_CaseInvariance(t *testing.T) {
	for _, variant := range casePermutations("#geo9c3xgp") {
		assert.True(t, IsValid(variant), "variant %q should be valid", variant)
	}
	for _, variant := range casePermutations("#geo9c3xg1") {
		assert.False(t, IsValid(variant), "variant %q should be invalid", variant)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "#geo9c3xgp", Normalize("#GEO9C3XGP"))
	assert.Equal(t, "#geo9c3xgp", Normalize("#geo9c3xgp"))
}

// casePermutations returns every upper/lower combination of the ASCII letters
// in s.
func casePermutations(s string) []string {
	variants := []string{""}
	for i := 0; i < len(s); i++ {
		b := s[i]
		lower, upper := lowerASCII(b), b
		if b >= 'a' && b <= 'z' {
			upper = b - ('a' - 'A')
		}
		next := make([]string, 0, len(variants)*2)
		for _, v := range variants {
			next = append(next, v+string(lower))
			if upper != lower {
				next = append(next, v+string(upper))
			}
		}
		variants = next
	}
	return variants
}
