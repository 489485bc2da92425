package geotoken

import (
	"fmt"
	"strings"
)

// PrivacyLocation is the shareable result of encoding a coordinate pair.
// Center coordinates are the midpoint of the covered cell, deliberately
// offset from the original input by up to the cell size. Values are immutable
// once created; an update means constructing a new one.
type PrivacyLocation struct {
	Token       string  `json:"token"`
	Label       string  `json:"label,omitempty"`
	FullCode    string  `json:"full_code"`
	CenterLat   float64 `json:"center_lat"`
	CenterLng   float64 `json:"center_lng"`
	PrecisionKm float64 `json:"precision_km"`
}

// Codec converts between raw coordinates, tokens, and areas using a grid
// codec primitive. The zero value is not usable; construct with NewCodec or
// Default.
type Codec struct {
	grid GridCodec
}

// NewCodec returns a codec backed by the given grid primitive.
func NewCodec(grid GridCodec) *Codec {
	return &Codec{grid: grid}
}

// Default returns a codec backed by Open Location Code.
func Default() *Codec {
	return NewCodec(OpenLocationCode{})
}

// Encode converts a coordinate pair into a PrivacyLocation. The token body is
// the lowercase truncation of the full grid code to six symbols; the reported
// center is the truncated cell's midpoint, never the input point itself.
func (c *Codec) Encode(lat, lng float64, label string) (PrivacyLocation, error) {
	if lat < -90 || lat > 90 {
		return PrivacyLocation{}, fmt.Errorf("%w: latitude %g", ErrInvalidCoordinate, lat)
	}
	if lng < -180 || lng > 180 {
		return PrivacyLocation{}, fmt.Errorf("%w: longitude %g", ErrInvalidCoordinate, lng)
	}

	full := c.grid.EncodeCode(lat, lng)
	body := strings.ToLower(significantSymbols(full, BodyLength))

	area, err := c.decodeBody(body)
	if err != nil {
		return PrivacyLocation{}, err
	}

	return PrivacyLocation{
		Token:       TokenPrefix + body,
		Label:       label,
		FullCode:    full,
		CenterLat:   area.Center.Lat,
		CenterLng:   area.Center.Lng,
		PrecisionKm: PrecisionKm,
	}, nil
}

// significantSymbols returns the first n code symbols, skipping the
// positional separator the grid codec inserts.
func significantSymbols(code string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < len(code) && b.Len() < n; i++ {
		if code[i] == gridSeparator {
			continue
		}
		b.WriteByte(code[i])
	}
	return b.String()
}
