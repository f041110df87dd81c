package models

// CaseStatus is the investigation state of an FIR case record.
type CaseStatus string

const (
	CaseStatusUnderInvestigation CaseStatus = "Under Investigation"
	CaseStatusClosed             CaseStatus = "Closed"
	CaseStatusChargesheetFiled   CaseStatus = "Chargesheet Filed"
	CaseStatusTransferred        CaseStatus = "Case Transferred"
)

// CaseRecord is a first-information-report case file.
type CaseRecord struct {
	CaseNumber      string     `json:"caseNumber" db:"case_number"`
	Status          CaseStatus `json:"status" db:"status"`
	PoliceStation   string     `json:"policeStation" db:"police_station"`
	OfficerName     string     `json:"officerName" db:"officer_name"`
	CrimeType       string     `json:"crimeType" db:"crime_type"`
	DateReported    string     `json:"dateReported" db:"date_reported"`
	Location        string     `json:"location" db:"location"`
	ComplainantName string     `json:"complainantName" db:"complainant_name"`
	Description     string     `json:"description" db:"description"`
	PhoneNumber     string     `json:"phoneNumber,omitempty" db:"phone_number"`
}

// CrimeStat is one (crime type, count) entry for a location.
type CrimeStat struct {
	Location  string `json:"location" db:"location"`
	CrimeType string `json:"crimeType" db:"crime_type"`
	Count     int    `json:"count" db:"count"`
	Date      string `json:"date" db:"date"`
}

// ComplaintCategory classifies a non-urgent citizen complaint.
type ComplaintCategory string

const (
	ComplaintTheft         ComplaintCategory = "Theft"
	ComplaintMissingPerson ComplaintCategory = "Missing Person"
	ComplaintHarassment    ComplaintCategory = "Harassment"
	ComplaintNoise         ComplaintCategory = "Noise Complaint"
	ComplaintTraffic       ComplaintCategory = "Traffic"
	ComplaintOther         ComplaintCategory = "Other"
)

// ComplaintStatus is the processing state of a complaint.
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "Open"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
)

// ComplaintRecord is a filed citizen complaint.
type ComplaintRecord struct {
	ID            string            `json:"id" db:"id"`
	Category      ComplaintCategory `json:"category" db:"category"`
	Description   string            `json:"description" db:"description"`
	Location      string            `json:"location" db:"location"`
	Status        ComplaintStatus   `json:"status" db:"status"`
	DateReported  string            `json:"dateReported" db:"date_reported"`
	ContactNumber string            `json:"contactNumber" db:"contact_number"`
}
