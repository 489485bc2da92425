package geotoken

// IsValid reports whether token is a well-formed geo hashtag: the #geo prefix
// followed by exactly six alphabet symbols, in any case mix. It is total and
// never fails; malformed input of any kind returns false.
func IsValid(token string) bool {
	if len(token) != tokenLength {
		return false
	}
	if !hasGeoPrefix(token) {
		return false
	}
	for i := len(TokenPrefix); i < tokenLength; i++ {
		if !isAlphabet(token[i]) {
			return false
		}
	}
	return true
}

// hasGeoPrefix checks for "#geo" at the start of s, case-insensitively.
// s must be at least len(TokenPrefix) bytes.
func hasGeoPrefix(s string) bool {
	return s[0] == '#' &&
		lowerASCII(s[1]) == 'g' &&
		lowerASCII(s[2]) == 'e' &&
		lowerASCII(s[3]) == 'o'
}
