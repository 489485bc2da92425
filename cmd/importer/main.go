package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"geotag-api/internal/config"
	"geotag-api/internal/geotoken"
	"geotag-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	reports, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d reports\n", len(reports))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure table exists
	err = createTableIfNotExists(conn)
	if err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// Insert reports
	err = insertReports(conn, reports)
	if err != nil {
		fmt.Printf("Error inserting reports: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, len(reports))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d reports\n", len(reports))
}

// parseCSV reads legacy reports with raw coordinates and reduces each one to
// a geo token at import time, so precise positions never reach the database.
func parseCSV(filePath string) ([]models.Report, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	codec := geotoken.Default()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var reports []models.Report
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 5 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 5 columns", len(record))
		}

		lat, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[3])
		}

		lng, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[4])
		}

		loc, err := codec.Encode(lat, lng, record[2])
		if err != nil {
			return nil, fmt.Errorf("failed to encode location for record: %w", err)
		}

		reports = append(reports, models.Report{
			ID:          uuid.New(),
			Category:    record[0],
			Description: record[1],
			Label:       record[2],
			GeoToken:    loc.Token,
			CenterLat:   loc.CenterLat,
			CenterLng:   loc.CenterLng,
			CreatedAt:   time.Now().UTC(),
		})
	}

	return reports, nil
}

func createTableIfNotExists(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS reports (
		id UUID PRIMARY KEY,
		category VARCHAR(64) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		geo_token VARCHAR(10) NOT NULL,
		label VARCHAR(255) NOT NULL DEFAULT '',
		center_lat DOUBLE PRECISION NOT NULL,
		center_lng DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS reports_geo_token_idx ON reports (geo_token);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertReports(conn *pgx.Conn, reports []models.Report) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"reports"},
		[]string{"id", "category", "description", "geo_token", "label", "center_lat", "center_lng", "created_at"},
		pgx.CopyFromSlice(len(reports), func(i int) ([]interface{}, error) {
			r := reports[i]
			return []interface{}{r.ID, r.Category, r.Description, r.GeoToken, r.Label, r.CenterLat, r.CenterLng, r.CreatedAt}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM reports").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count reports: %w", err)
	}

	if count < expectedCount {
		return fmt.Errorf("report count mismatch: expected at least %d, got %d", expectedCount, count)
	}

	// Check a sample token
	var token string
	err = conn.QueryRow(context.Background(), "SELECT geo_token FROM reports LIMIT 1").Scan(&token)
	if err != nil {
		return fmt.Errorf("failed to check geo token: %w", err)
	}

	fmt.Printf("Sample geo token: %s\n", token)
	return nil
}
