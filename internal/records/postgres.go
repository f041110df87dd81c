// internal/records/postgres.go
package records

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	stderrors "police-assistant/internal/common/errors"
	"police-assistant/internal/models"
)

// PostgresStore backs CaseStore and ComplaintStore with PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByNumber(ctx context.Context, caseNumber string) (*models.CaseRecord, error) {
	var rec models.CaseRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT case_number, status, police_station, officer_name, crime_type,
		       date_reported, location, complainant_name, description, phone_number
		FROM case_records
		WHERE case_number ILIKE '%' || $1 || '%'
		ORDER BY date_reported DESC
		LIMIT 1`, caseNumber).Scan(
		&rec.CaseNumber, &rec.Status, &rec.PoliceStation, &rec.OfficerName,
		&rec.CrimeType, &rec.DateReported, &rec.Location, &rec.ComplainantName,
		&rec.Description, &rec.PhoneNumber,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, stderrors.NewStoreQueryFailedError("case lookup", err)
	}
	return &rec, nil
}

func (s *PostgresStore) VerifyAccess(ctx context.Context, caseNumber, phone string) (bool, error) {
	rec, err := s.FindByNumber(ctx, caseNumber)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return rec.PhoneNumber == phone, nil
}

func (s *PostgresStore) StatsByLocation(ctx context.Context, location string) ([]models.CrimeStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT location, crime_type, count, date
		FROM crime_stats
		WHERE location ILIKE '%' || $1 || '%'
		ORDER BY count DESC`, location)
	if err != nil {
		return nil, stderrors.NewStoreQueryFailedError("stats lookup", err)
	}
	defer rows.Close()

	var out []models.CrimeStat
	for rows.Next() {
		var st models.CrimeStat
		if err := rows.Scan(&st.Location, &st.CrimeType, &st.Count, &st.Date); err != nil {
			return nil, stderrors.NewStoreQueryFailedError("stats scan", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewStoreQueryFailedError("stats rows", err)
	}
	return out, nil
}

func (s *PostgresStore) Search(ctx context.Context, query string) ([]models.CaseRecord, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT case_number, status, police_station, officer_name, crime_type,
		       date_reported, location, complainant_name, description, phone_number
		FROM case_records
		WHERE case_number ILIKE $1 OR crime_type ILIKE $1
		   OR location ILIKE $1 OR description ILIKE $1
		ORDER BY date_reported DESC
		LIMIT 20`, pattern)
	if err != nil {
		return nil, stderrors.NewStoreQueryFailedError("case search", err)
	}
	defer rows.Close()

	var out []models.CaseRecord
	for rows.Next() {
		var rec models.CaseRecord
		if err := rows.Scan(
			&rec.CaseNumber, &rec.Status, &rec.PoliceStation, &rec.OfficerName,
			&rec.CrimeType, &rec.DateReported, &rec.Location, &rec.ComplainantName,
			&rec.Description, &rec.PhoneNumber,
		); err != nil {
			return nil, stderrors.NewStoreQueryFailedError("case search scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewStoreQueryFailedError("case search rows", err)
	}
	return out, nil
}

func (s *PostgresStore) Create(ctx context.Context, category models.ComplaintCategory, description, location, contact string) (*models.ComplaintRecord, error) {
	rec := models.ComplaintRecord{
		ID:            "COMP/AP/" + uuid.NewString()[:8],
		Category:      category,
		Description:   description,
		Location:      location,
		Status:        models.ComplaintOpen,
		DateReported:  time.Now().Format("2006-01-02"),
		ContactNumber: contact,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO complaints (id, category, description, location, status, date_reported, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.Category, rec.Description, rec.Location, rec.Status, rec.DateReported, rec.ContactNumber,
	)
	if err != nil {
		return nil, stderrors.NewComplaintCreateFailedError(err)
	}
	return &rec, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.ComplaintRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, description, location, status, date_reported, contact_number
		FROM complaints
		ORDER BY date_reported DESC`)
	if err != nil {
		return nil, stderrors.NewStoreQueryFailedError("complaint list", err)
	}
	defer rows.Close()

	var out []models.ComplaintRecord
	for rows.Next() {
		var rec models.ComplaintRecord
		if err := rows.Scan(
			&rec.ID, &rec.Category, &rec.Description, &rec.Location,
			&rec.Status, &rec.DateReported, &rec.ContactNumber,
		); err != nil {
			return nil, stderrors.NewStoreQueryFailedError("complaint scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewStoreQueryFailedError("complaint rows", err)
	}
	return out, nil
}
