package service

import (
	"context"
	"fmt"

	"geotag-api/internal/geocoder"
	"geotag-api/internal/geotoken"

	"github.com/rs/zerolog"
)

// Describer interface for dependency injection
type Describer interface {
	Describe(ctx context.Context, token string) (*geocoder.Place, error)
}

// DescribeService resolves human-readable place names for tokens. Geocoding
// is best effort: when the upstream collaborator is missing or failing, the
// service degrades to "no description available" instead of surfacing the
// failure, so token handling never blocks on network availability.
type DescribeService struct {
	geocoder Describer
	logger   zerolog.Logger
}

// NewDescribeService creates a new describe service. geocoder may be nil when
// reverse geocoding is disabled.
func NewDescribeService(geocoder Describer, logger zerolog.Logger) *DescribeService {
	return &DescribeService{geocoder: geocoder, logger: logger}
}

// Describe returns the place for token, or nil when no description is
// available.
func (s *DescribeService) Describe(ctx context.Context, token string) (*geocoder.Place, error) {
	if !geotoken.IsValid(token) {
		return nil, fmt.Errorf("service: %w: %q", geotoken.ErrInvalidToken, token)
	}

	if s.geocoder == nil {
		return nil, nil
	}

	place, err := s.geocoder.Describe(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Str("token", geotoken.Normalize(token)).Msg("reverse geocoding failed")
		return nil, nil
	}
	return place, nil
}
