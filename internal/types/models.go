package types

import "encoding/json"

type AnalysisRequest struct {
	Transcript     string          `json:"transcript"`
	ProviderResult json.RawMessage `json:"provider_result,omitempty"`
	File           FileMeta        `json:"file"`
}

type FileMeta struct {
	Name string `json:"name,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// WordTiming is an optional per-word alignment supplied by the
// transcription provider.
type WordTiming struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// ProviderMeta is the subset of the provider payload the core reads.
// Every field is optional; a missing or malformed payload yields zero values.
type ProviderMeta struct {
	DurationSec float64      `json:"duration_sec,omitempty"`
	Words       []WordTiming `json:"words,omitempty"`
}

type FactCategory string

const (
	CategoryPersonal  FactCategory = "personal"
	CategoryContact   FactCategory = "contact"
	CategoryInsurance FactCategory = "insurance"
	CategoryFinancial FactCategory = "financial"
	CategoryMedical   FactCategory = "medical"
	CategoryGeneral   FactCategory = "general"
)

const (
	SourceTranscript = "transcript"
	SourceInferred   = "inferred"
)

type ExtractedFact struct {
	ID         string       `json:"id"`
	Category   FactCategory `json:"category"`
	Type       string       `json:"type"`
	Value      string       `json:"value"`
	Confidence float64      `json:"confidence"` // 0-100
	Context    string       `json:"context"`
	Verified   bool         `json:"verified"`
	Source     string       `json:"source"`
}

// PersonalInfo is a last-write-wins projection: each new match for a field
// overwrites the previous value, while the fact list keeps every match.
type PersonalInfo struct {
	Name        string `json:"name,omitempty"`
	Age         string `json:"age,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
}

type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type InsuranceInfo struct {
	Company        string `json:"company,omitempty"`
	PlanType       string `json:"plan_type,omitempty"`
	MedicarePartA  string `json:"medicare_part_a,omitempty"` // Yes | No
	MedicarePartB  string `json:"medicare_part_b,omitempty"`
	MonthlyPremium string `json:"monthly_premium,omitempty"`
}

type ExtractionResult struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	ContactInfo    ContactInfo     `json:"contact_info"`
	InsuranceInfo  InsuranceInfo   `json:"insurance_info"`
	ExtractedFacts []ExtractedFact `json:"extracted_facts"`
	Confidence     float64         `json:"confidence"` // mean of fact confidences, 0 when empty
}

type Speaker string

const (
	SpeakerA Speaker = "A" // agent-leaning role
	SpeakerB Speaker = "B" // customer-leaning role
)

// Call-flow event tags attached to segments.
const (
	EventDialogStart        = "dialog_start"
	EventIntroductionStart  = "introduction_start"
	EventIntroductionEnd    = "introduction_end"
	EventPrimaryAgentStart  = "primary_agent_start"
	EventHoldStart          = "hold_start"
	EventTransferStart      = "transfer_start"
	EventAutoAttendantStart = "auto_attendant_start"
	EventCallEnd            = "call_end"
)

// TranscriptSegment is one attributed clause. Speaker labels and timestamps
// are heuristic estimates, not ground truth.
type TranscriptSegment struct {
	Speaker  Speaker  `json:"speaker"`
	Content  string   `json:"content"`
	StartSec float64  `json:"start_sec"`
	EndSec   float64  `json:"end_sec"`
	Events   []string `json:"events,omitempty"`
}
