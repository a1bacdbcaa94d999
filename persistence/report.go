package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Nehilsa2/company_resolver/report"
)

// NewRunID returns a fresh identifier for one resolution run
func NewRunID() string {
	return uuid.NewString()
}

// SaveReport stores every row of one run. Empty values are stored as NULL.
func (s *Store) SaveReport(ctx context.Context, runID string, rows []report.Row) error {
	if runID == "" {
		return fmt.Errorf("run id is empty")
	}

	failed := 0
	for _, row := range rows {
		if row.Error != "" {
			failed++
		}
	}

	err := s.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (id, company_count, failed_count) VALUES (?, ?, ?)
		`, runID, len(rows), failed)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO company_resolutions (
				run_id, s_number, name, website, linkedin, error
			) VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, row := range rows {
			_, err := stmt.ExecContext(ctx,
				runID, row.Number, row.Name,
				nullString(row.Website), nullString(row.LinkedIn), nullString(row.Error),
			)
			if err != nil {
				return fmt.Errorf("failed to insert row %d: %w", row.Number, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// LoadReport returns the rows of a run ordered by S Number
func (s *Store) LoadReport(ctx context.Context, runID string) ([]report.Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s_number, name, website, linkedin, error
		FROM company_resolutions
		WHERE run_id = ?
		ORDER BY s_number
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}
	defer rows.Close()

	var out []report.Row
	for rows.Next() {
		var (
			row                       report.Row
			website, linkedIn, errMsg sql.NullString
		)
		if err := rows.Scan(&row.Number, &row.Name, &website, &linkedIn, &errMsg); err != nil {
			return nil, err
		}
		row.Website = website.String
		row.LinkedIn = linkedIn.String
		row.Error = errMsg.String
		out = append(out, row)
	}
	return out, rows.Err()
}

// LatestRunID returns the id of the most recently saved run
func (s *Store) LatestRunID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM runs ORDER BY created_at DESC, rowid DESC LIMIT 1
	`).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to find latest run: %w", err)
	}
	return id, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
