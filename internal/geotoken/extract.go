package geotoken

// Extract scans text for embedded geo hashtags and returns them lowercased,
// in order of appearance. Duplicates are kept, one per occurrence. Extraction
// is total: it never fails, and arbitrary Unicode around the tokens is safe
// because matching only inspects ASCII bytes.
//
// A candidate preceded by a second '#' is skipped, so doubled-hash artifacts
// do not match. A token immediately followed by further alphabet symbols
// still yields the six-symbol match with the trailing symbols ignored; whole
// string validation of such a run would reject it, but in free text the first
// six symbols are taken as the intended token.
func Extract(text string) []string {
	var tokens []string
	for i := 0; i+tokenLength <= len(text); i++ {
		if text[i] != '#' {
			continue
		}
		if i > 0 && text[i-1] == '#' {
			continue
		}
		if !hasGeoPrefix(text[i:]) {
			continue
		}
		match := true
		for j := i + len(TokenPrefix); j < i+tokenLength; j++ {
			if !isAlphabet(text[j]) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		tokens = append(tokens, Normalize(text[i:i+tokenLength]))
		i += tokenLength - 1
	}
	return tokens
}
