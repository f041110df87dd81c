// internal/records/memory.go
package records

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"police-assistant/internal/models"
)

// MemoryStore is the seeded in-process record store used in development
// and tests. Lookups mirror the database-backed stores: substring case
// matching, case-insensitive location filtering.
type MemoryStore struct {
	mu         sync.RWMutex
	cases      []models.CaseRecord
	stats      []models.CrimeStat
	complaints []models.ComplaintRecord
}

// NewMemoryStore returns a store seeded with sample records.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cases: sampleCases(), stats: sampleStats()}
}

// NewEmptyMemoryStore returns a store with no seed data.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) FindByNumber(ctx context.Context, caseNumber string) (*models.CaseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(caseNumber)
	for i := range s.cases {
		if strings.Contains(strings.ToLower(s.cases[i].CaseNumber), needle) {
			rec := s.cases[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) VerifyAccess(ctx context.Context, caseNumber, phone string) (bool, error) {
	rec, err := s.FindByNumber(ctx, caseNumber)
	if err != nil {
		return false, nil
	}
	return rec.PhoneNumber == phone, nil
}

func (s *MemoryStore) StatsByLocation(ctx context.Context, location string) ([]models.CrimeStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(location)
	var out []models.CrimeStat
	for _, st := range s.stats {
		if strings.Contains(strings.ToLower(st.Location), needle) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *MemoryStore) Search(ctx context.Context, query string) ([]models.CaseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var out []models.CaseRecord
	for _, rec := range s.cases {
		haystack := strings.ToLower(strings.Join([]string{
			rec.CaseNumber, rec.CrimeType, rec.Location, rec.Description,
		}, " "))
		if strings.Contains(haystack, needle) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, category models.ComplaintCategory, description, location, contact string) (*models.ComplaintRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.ComplaintRecord{
		ID:            newComplaintID(),
		Category:      category,
		Description:   description,
		Location:      location,
		Status:        models.ComplaintOpen,
		DateReported:  time.Now().Format("2006-01-02"),
		ContactNumber: contact,
	}
	s.complaints = append(s.complaints, rec)
	return &rec, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]models.ComplaintRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ComplaintRecord(nil), s.complaints...), nil
}

// newComplaintID mints ids like COMP/AP/1a2b3c4d.
func newComplaintID() string {
	return "COMP/AP/" + uuid.NewString()[:8]
}

func sampleCases() []models.CaseRecord {
	return []models.CaseRecord{
		{
			CaseNumber:      "FIR/001/2024",
			Status:          models.CaseStatusUnderInvestigation,
			PoliceStation:   "Guntur City Police Station",
			OfficerName:     "SI Ramesh Kumar",
			CrimeType:       "Theft",
			DateReported:    "2024-06-15",
			Location:        "Brodipet, Guntur",
			ComplainantName: "Rajesh Reddy",
			Description:     "Two-wheeler stolen from the residence premises during the night.",
			PhoneNumber:     "9876543210",
		},
		{
			CaseNumber:      "FIR/002/2024",
			Status:          models.CaseStatusChargesheetFiled,
			PoliceStation:   "Vijayawada Central Police Station",
			OfficerName:     "CI Lakshmi Prasad",
			CrimeType:       "Fraud",
			DateReported:    "2024-05-02",
			Location:        "Governorpet, Vijayawada",
			ComplainantName: "Suresh Babu",
			Description:     "Online investment fraud involving a fake trading application.",
			PhoneNumber:     "9123456780",
		},
		{
			CaseNumber:      "FIR/003/2024",
			Status:          models.CaseStatusClosed,
			PoliceStation:   "Tirupati East Police Station",
			OfficerName:     "SI Venkata Rao",
			CrimeType:       "Missing Person",
			DateReported:    "2024-03-20",
			Location:        "Tirupati",
			ComplainantName: "Padma Kumari",
			Description:     "Missing person traced and reunited with the family.",
			PhoneNumber:     "9988776655",
		},
	}
}

func sampleStats() []models.CrimeStat {
	return []models.CrimeStat{
		{Location: "Guntur", CrimeType: "Theft", Count: 5, Date: "2024-07"},
		{Location: "Guntur", CrimeType: "Fraud", Count: 2, Date: "2024-07"},
		{Location: "Vijayawada", CrimeType: "Missing Person", Count: 3, Date: "2024-07"},
		{Location: "Tirupati", CrimeType: "Harassment", Count: 1, Date: "2024-07"},
	}
}
