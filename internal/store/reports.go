package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cypress-app/cypress-api/internal/models"
)

const statusPending = "Pending"

// ReportStore persists submitted reports. There is no update or delete
// path; a report's status and time are fixed at creation.
type ReportStore struct {
	DB *sqlx.DB
}

func NewReportStore(db *sqlx.DB) *ReportStore {
	return &ReportStore{DB: db}
}

// Create inserts r and fills in its ID, Status and Time.
func (s *ReportStore) Create(ctx context.Context, r *models.Report) error {
	r.Status = statusPending
	r.Time = time.Now().UTC()

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reports: begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO reports (user_id, title, description, image_url, lat, lon, status, time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, r.UserID, r.Title, r.Description, r.ImageURL, r.Lat, r.Lng, r.Status, r.Time).Scan(&r.ID)

	if err != nil {
		return fmt.Errorf("reports: insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reports: commit: %w", err)
	}

	return nil
}

// List returns every report, newest first.
func (s *ReportStore) List(ctx context.Context) ([]models.Report, error) {
	reports := []models.Report{}

	err := s.DB.SelectContext(ctx, &reports, `
		SELECT id, user_id, title, description, image_url, lat, lon, status, time
		FROM reports
		ORDER BY time DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("reports: select: %w", err)
	}

	return reports, nil
}
