package geotoken

import "errors"

var (
	// ErrInvalidCoordinate marks a latitude or longitude outside the valid range.
	ErrInvalidCoordinate = errors.New("geotoken: coordinate out of range")

	// ErrInvalidToken marks a token that fails the grammar or alphabet check.
	ErrInvalidToken = errors.New("geotoken: invalid token")

	// ErrDecodeFailure marks a grid codec rejection of a well-formed padded
	// code. Tokens that pass IsValid should never trigger it.
	ErrDecodeFailure = errors.New("geotoken: grid decode failed")
)
