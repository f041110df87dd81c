package models

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	IntentFIRStatus     Intent = "fir_status"
	IntentCrimeStats    Intent = "crime_stats"
	IntentFileComplaint Intent = "file_complaint"
	IntentFileFIR       Intent = "file_fir"
	IntentEmergency     Intent = "emergency"
	IntentTrafficRules  Intent = "traffic_rules"
	IntentLostDocuments Intent = "lost_documents"
	IntentGreeting      Intent = "greeting"
	IntentHelp          Intent = "help"
	IntentPoliceContact Intent = "police_contact"
	IntentGeneralQuery  Intent = "general_query"
)

// Entities holds the optional structured fields pulled out of free text.
// An empty string means the field was not present in the input; extracted
// values are kept verbatim, not normalized.
type Entities struct {
	CaseNumber  string `json:"caseNumber,omitempty"`
	Location    string `json:"location,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Timeframe   string `json:"timeframe,omitempty"`
}

// IsEmpty reports whether no entity was extracted.
func (e Entities) IsEmpty() bool {
	return e == Entities{}
}

// ParsedQuery is the result of running one input through the classifier and
// the extractor. Produced fresh per input, never stored.
type ParsedQuery struct {
	Intent     Intent   `json:"intent"`
	Entities   Entities `json:"entities"`
	Confidence float64  `json:"confidence"`
}
