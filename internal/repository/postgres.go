package repository

import (
	"context"
	"fmt"

	"geotag-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements report persistence on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// InsertReport stores a new report.
func (r *Repository) InsertReport(ctx context.Context, report models.Report) error {
	sql := `
		INSERT INTO reports (id, category, description, geo_token, label, center_lat, center_lng, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, sql,
		report.ID,
		report.Category,
		report.Description,
		report.GeoToken,
		report.Label,
		report.CenterLat,
		report.CenterLng,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert report: %w", err)
	}
	return nil
}

// FindReportsByTokens returns reports filed under any of the given geo
// tokens, newest first. Tokens are matched exactly, so callers must pass
// canonical lowercase tokens.
func (r *Repository) FindReportsByTokens(ctx context.Context, tokens []string, limit int) ([]models.Report, error) {
	sql := `
		SELECT id, category, description, geo_token, label, center_lat, center_lng, created_at
		FROM reports
		WHERE geo_token = ANY($1)
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, tokens, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute token query: %w", err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		var rep models.Report
		err := rows.Scan(
			&rep.ID,
			&rep.Category,
			&rep.Description,
			&rep.GeoToken,
			&rep.Label,
			&rep.CenterLat,
			&rep.CenterLng,
			&rep.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return reports, nil
}

// CountReportsByToken returns the number of reports filed under a token.
func (r *Repository) CountReportsByToken(ctx context.Context, token string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE geo_token = $1`, token).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to count reports: %w", err)
	}
	return count, nil
}
