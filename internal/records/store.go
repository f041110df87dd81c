// internal/records/store.go
package records

import (
	"context"
	"errors"

	"police-assistant/internal/models"
)

// ErrNotFound is returned by lookups that miss. Callers render it as a
// templated "not found" answer, never a failure.
var ErrNotFound = errors.New("record not found")

// CaseStore reads FIR case records and crime statistics.
type CaseStore interface {
	// FindByNumber resolves a case by (possibly partial) case number.
	// "001/2024" finds "FIR/001/2024". Misses return ErrNotFound.
	FindByNumber(ctx context.Context, caseNumber string) (*models.CaseRecord, error)

	// VerifyAccess reports whether phone matches the complainant's number
	// on record. A missing case verifies as false, not as an error.
	VerifyAccess(ctx context.Context, caseNumber, phone string) (bool, error)

	// StatsByLocation returns crime statistics whose location matches,
	// case-insensitive substring. No match returns an empty slice.
	StatsByLocation(ctx context.Context, location string) ([]models.CrimeStat, error)

	// Search runs a free-text scan over case records.
	Search(ctx context.Context, query string) ([]models.CaseRecord, error)
}

// ComplaintStore files and lists citizen complaints.
type ComplaintStore interface {
	Create(ctx context.Context, category models.ComplaintCategory, description, location, contact string) (*models.ComplaintRecord, error)
	List(ctx context.Context) ([]models.ComplaintRecord, error)
}

// CaseSearcher is the slice of CaseStore the full-text search endpoint
// needs; the Elasticsearch-backed implementation provides only this.
type CaseSearcher interface {
	Search(ctx context.Context, query string) ([]models.CaseRecord, error)
}
