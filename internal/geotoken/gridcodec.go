package geotoken

import (
	olc "github.com/google/open-location-code/go"
)

// Point is a coordinate pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CellBounds is the rectangle a grid code covers.
type CellBounds struct {
	SouthWest Point
	NorthEast Point
}

// GridCodec is the coordinate-to-code primitive the token scheme builds on.
// Implementations must be deterministic and safe for concurrent use.
type GridCodec interface {
	// EncodeCode returns the full-precision code for a coordinate pair.
	EncodeCode(lat, lng float64) string

	// DecodeCode returns the bounds a code covers. Codes shorter than full
	// precision cover correspondingly larger cells.
	DecodeCode(code string) (CellBounds, error)
}

const (
	fullCodeLength   = 10
	paddedCodeLength = 8
	gridSeparator    = '+'
	gridPadding      = '0'
)

// OpenLocationCode implements GridCodec on the Open Location Code ("plus
// code") algorithm, whose symbol set is the token alphabet.
type OpenLocationCode struct{}

func (OpenLocationCode) EncodeCode(lat, lng float64) string {
	return olc.Encode(lat, lng, fullCodeLength)
}

func (OpenLocationCode) DecodeCode(code string) (CellBounds, error) {
	area, err := olc.Decode(code)
	if err != nil {
		return CellBounds{}, err
	}
	return CellBounds{
		SouthWest: Point{Lat: area.LatLo, Lng: area.LngLo},
		NorthEast: Point{Lat: area.LatHi, Lng: area.LngHi},
	}, nil
}
