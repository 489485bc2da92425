// Package geotoken implements the privacy location codec: a deterministic
// transformation between raw GPS coordinates and a short, shareable geo
// hashtag that reveals only an approximate area. All operations are pure and
// safe for concurrent use.
package geotoken

const (
	// Alphabet is the restricted 20-symbol set token bodies are drawn from:
	// digits 2-9 plus the consonants C F G H J M P Q R V W X. Vowels, 0/1,
	// and visually ambiguous characters are excluded. Input is accepted in
	// either case; the canonical form is lowercase.
	Alphabet = "23456789CFGHJMPQRVWX"

	// TokenPrefix marks a geo hashtag in free text. Matched case-insensitively.
	TokenPrefix = "#geo"

	// BodyLength is the number of alphabet symbols in a token body. Six
	// symbols truncate the full grid code to a single neighborhood-scale cell.
	BodyLength = 6

	// PrecisionKm is the nominal side length of the cell a token covers.
	// It is a property of the truncation scheme, not measured per token.
	PrecisionKm = 1.0
)

const (
	alphabetLower = "23456789cfghjmpqrvwx"
	tokenLength   = len(TokenPrefix) + BodyLength
)

// isAlphabet reports whether b is an alphabet symbol, in either case.
func isAlphabet(b byte) bool {
	if b >= '2' && b <= '9' {
		return true
	}
	switch lowerASCII(b) {
	case 'c', 'f', 'g', 'h', 'j', 'm', 'p', 'q', 'r', 'v', 'w', 'x':
		return true
	}
	return false
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Normalize returns the canonical lowercase form of a token. It only folds
// ASCII letters, so it is safe on arbitrary byte content.
func Normalize(token string) string {
	b := []byte(token)
	for i := range b {
		b[i] = lowerASCII(b[i])
	}
	return string(b)
}
