package geotoken

import (
	"fmt"
	"strings"
)

// Area is the bounding rectangle a token covers, with its derived center.
// Areas are only ever produced by parsing a valid token.
type Area struct {
	SouthWest Point `json:"south_west"`
	NorthEast Point `json:"north_east"`
	Center    Point `json:"center"`
}

// ParseArea recovers the bounding rectangle and center a token covers.
// Parsing is case-insensitive: every case permutation of the same six symbols
// yields an identical Area. Invalid tokens fail with ErrInvalidToken.
func (c *Codec) ParseArea(token string) (Area, error) {
	if !IsValid(token) {
		return Area{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	return c.decodeBody(strings.ToLower(token[len(TokenPrefix):]))
}

// decodeBody decodes a lowercase six-symbol body through the grid codec,
// padded to the codec's minimum valid code length.
func (c *Codec) decodeBody(body string) (Area, error) {
	bounds, err := c.grid.DecodeCode(paddedCode(body))
	if err != nil {
		// A body drawn from the alphabet should always decode.
		return Area{}, fmt.Errorf("%w: %q: %v", ErrDecodeFailure, body, err)
	}
	return Area{
		SouthWest: bounds.SouthWest,
		NorthEast: bounds.NorthEast,
		Center: Point{
			Lat: (bounds.SouthWest.Lat + bounds.NorthEast.Lat) / 2,
			Lng: (bounds.SouthWest.Lng + bounds.NorthEast.Lng) / 2,
		},
	}, nil
}

// paddedCode expands a token body to the shortest code the grid codec will
// decode: symbols uppercased, filled to eight places with the neutral padding
// symbol, separator appended.
func paddedCode(body string) string {
	var b strings.Builder
	b.Grow(paddedCodeLength + 1)
	b.WriteString(strings.ToUpper(body))
	for i := len(body); i < paddedCodeLength; i++ {
		b.WriteByte(gridPadding)
	}
	b.WriteByte(gridSeparator)
	return b.String()
}

// Contains reports whether the point lies inside the area, boundaries
// included. Areas never span the antimeridian, so no wraparound handling is
// done.
func (a Area) Contains(lat, lng float64) bool {
	return lat >= a.SouthWest.Lat && lat <= a.NorthEast.Lat &&
		lng >= a.SouthWest.Lng && lng <= a.NorthEast.Lng
}
