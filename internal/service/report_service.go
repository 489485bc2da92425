package service

import (
	"context"
	"fmt"
	"time"

	"geotag-api/internal/geo"
	"geotag-api/internal/geotoken"
	"geotag-api/internal/models"

	"github.com/google/uuid"
)

const defaultSearchLimit = 50

// ReportRepository interface for dependency injection
type ReportRepository interface {
	InsertReport(ctx context.Context, report models.Report) error
	FindReportsByTokens(ctx context.Context, tokens []string, limit int) ([]models.Report, error)
}

// ReportService contains the business logic for community issue reports.
type ReportService struct {
	repo  ReportRepository
	codec *geotoken.Codec
}

// NewReportService creates a new report service
func NewReportService(repo ReportRepository, codec *geotoken.Codec) *ReportService {
	return &ReportService{repo: repo, codec: codec}
}

// CreateReportInput carries the fields needed to file a report. Coordinates
// are used once to derive the geo token and then discarded.
type CreateReportInput struct {
	Category    string
	Description string
	Label       string
	Lat         float64
	Lng         float64
}

// CreateReport files a new issue report. The reporter's coordinates are
// reduced to a token and cell center before anything is persisted.
func (s *ReportService) CreateReport(ctx context.Context, in CreateReportInput) (models.Report, error) {
	if in.Category == "" {
		return models.Report{}, fmt.Errorf("service: category cannot be empty")
	}

	loc, err := s.codec.Encode(in.Lat, in.Lng, in.Label)
	if err != nil {
		return models.Report{}, fmt.Errorf("service: failed to encode report location: %w", err)
	}

	report := models.Report{
		ID:          uuid.New(),
		Category:    in.Category,
		Description: in.Description,
		GeoToken:    loc.Token,
		Label:       in.Label,
		CenterLat:   loc.CenterLat,
		CenterLng:   loc.CenterLng,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.InsertReport(ctx, report); err != nil {
		return models.Report{}, fmt.Errorf("service: failed to store report: %w", err)
	}

	return report, nil
}

// SearchResult pairs a report with its distance from the searched cell's
// center.
type SearchResult struct {
	models.Report
	DistanceMeters float64 `json:"distance_meters"`
}

// SearchByToken returns reports filed under token, newest first. With nearby
// set, the query widens to the token's lexical neighbor set; results may then
// come from cells that are not geographically adjacent.
func (s *ReportService) SearchByToken(ctx context.Context, token string, nearby bool, limit int) ([]SearchResult, error) {
	area, err := s.codec.ParseArea(token)
	if err != nil {
		return nil, fmt.Errorf("service: failed to parse token: %w", err)
	}

	tokens := []string{geotoken.Normalize(token)}
	if nearby {
		// Cannot fail once ParseArea has accepted the token.
		tokens, _ = geotoken.Neighbors(token)
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}

	reports, err := s.repo.FindReportsByTokens(ctx, tokens, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search reports: %w", err)
	}

	results := make([]SearchResult, 0, len(reports))
	for _, r := range reports {
		results = append(results, SearchResult{
			Report:         r,
			DistanceMeters: geo.DistanceMeters(area.Center.Lat, area.Center.Lng, r.CenterLat, r.CenterLng),
		})
	}
	return results, nil
}
