package geotoken

import "fmt"

// Neighbors returns the token (lowercased) first, followed by the nineteen
// variants produced by substituting its final symbol with each other alphabet
// symbol, in alphabet order.
//
// Adjacency here is lexical, in token space, not geographic: the variants are
// NOT guaranteed to border the origin cell on the map. The list exists to
// widen a "search nearby" query without extra decode or distance work. True
// geographic adjacency would require re-encoding the eight surrounding cells
// at the same precision.
func Neighbors(token string) ([]string, error) {
	if !IsValid(token) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	t := Normalize(token)
	last := t[len(t)-1]
	stem := t[:len(t)-1]

	out := make([]string, 0, len(alphabetLower))
	out = append(out, t)
	for i := 0; i < len(alphabetLower); i++ {
		if alphabetLower[i] == last {
			continue
		}
		out = append(out, stem+string(alphabetLower[i]))
	}
	return out, nil
}
