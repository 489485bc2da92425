package service

import (
	"fmt"

	"geotag-api/internal/geotoken"
	"geotag-api/internal/observability"
)

// LocationService contains the core business logic for privacy location
// operations. It is a thin layer over the token codec: pure, stateless, and
// safe for concurrent use.
type LocationService struct {
	codec   *geotoken.Codec
	metrics *observability.Metrics
}

// NewLocationService creates a new location service
func NewLocationService(codec *geotoken.Codec, metrics *observability.Metrics) *LocationService {
	return &LocationService{codec: codec, metrics: metrics}
}

// Tag converts raw coordinates into a shareable privacy location.
func (s *LocationService) Tag(lat, lng float64, label string) (geotoken.PrivacyLocation, error) {
	loc, err := s.codec.Encode(lat, lng, label)
	if err != nil {
		return geotoken.PrivacyLocation{}, fmt.Errorf("service: failed to encode location: %w", err)
	}
	s.metrics.TokensEncoded.Inc()
	return loc, nil
}

// ResolveArea recovers the bounding rectangle a token covers.
func (s *LocationService) ResolveArea(token string) (geotoken.Area, error) {
	area, err := s.codec.ParseArea(token)
	if err != nil {
		return geotoken.Area{}, fmt.Errorf("service: failed to parse token: %w", err)
	}
	return area, nil
}

// Nearby returns the token's lexical neighbor set for widening a search.
func (s *LocationService) Nearby(token string) ([]string, error) {
	neighbors, err := geotoken.Neighbors(token)
	if err != nil {
		return nil, fmt.Errorf("service: failed to build neighbor set: %w", err)
	}
	return neighbors, nil
}

// ExtractTokens mines normalized geo tokens out of free text.
func (s *LocationService) ExtractTokens(text string) []string {
	tokens := geotoken.Extract(text)
	s.metrics.TokensExtracted.Add(float64(len(tokens)))
	return tokens
}

// Contains reports whether the point lies inside the token's area.
func (s *LocationService) Contains(token string, lat, lng float64) (bool, error) {
	area, err := s.codec.ParseArea(token)
	if err != nil {
		return false, fmt.Errorf("service: failed to parse token: %w", err)
	}
	return area.Contains(lat, lng), nil
}
