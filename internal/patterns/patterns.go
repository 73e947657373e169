// Package patterns holds the categorized lexical cues the rest of the core
// interprets. It is pure data: adding a pattern never requires touching the
// extraction or scoring logic.
package patterns

import (
	"regexp"

	"call-insights-go/internal/types"
)

// FactPattern binds one regular expression to a fact type, a category, a
// static confidence weight, and (optionally) the projection field it feeds.
type FactPattern struct {
	Type       string
	Category   types.FactCategory
	Re         *regexp.Regexp
	Confidence float64
	Field      string // projection field name, empty when the fact has none
	Group      int    // capture group holding the value, 0 = whole match
}

// Confidence weights are static per fact type, not derived from match quality.
const (
	ConfEmail     = 95
	ConfPhone     = 92
	ConfName      = 90
	ConfDOB       = 88
	ConfAge       = 85
	ConfAddress   = 82
	ConfZip       = 85
	ConfState     = 80
	ConfCity      = 75
	ConfInsurance = 85
	ConfMedicare  = 88
	ConfAmount    = 80
	ConfMedical   = 75
	ConfFinancial = 72
	ConfGeneral   = 60
)

// ContactPatterns match emails and phone numbers. The two phone patterns
// overlap on purpose: the same number matched by both yields two facts.
var ContactPatterns = []FactPattern{
	{
		Type:       "Email Address",
		Category:   types.CategoryContact,
		Re:         regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
		Confidence: ConfEmail,
		Field:      "email",
	},
	{
		Type:       "Phone Number",
		Category:   types.CategoryContact,
		Re:         regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}`),
		Confidence: ConfPhone,
		Field:      "phone",
	},
	{
		Type:       "Phone Number",
		Category:   types.CategoryContact,
		Re:         regexp.MustCompile(`\b\d{10}\b`),
		Confidence: ConfPhone,
		Field:      "phone",
	},
}

// PersonalPatterns cover name, address, city, state and zip. Dates of birth
// and age have dedicated grammars below.
var PersonalPatterns = []FactPattern{
	{
		Type:       "Full Name",
		Category:   types.CategoryPersonal,
		Re:         regexp.MustCompile(`(?i)\bmy name is ([A-Za-z]+(?: [A-Za-z]+){0,2})`),
		Confidence: ConfName,
		Field:      "name",
		Group:      1,
	},
	{
		Type:       "Full Name",
		Category:   types.CategoryPersonal,
		Re:         regexp.MustCompile(`(?i)\bthis is ([A-Z][a-z]+ [A-Z][a-z]+)\b`),
		Confidence: ConfName,
		Field:      "name",
		Group:      1,
	},
	{
		Type:       "Street Address",
		Category:   types.CategoryPersonal,
		Re:         regexp.MustCompile(`(?i)\b\d{1,5} [A-Za-z]+(?: [A-Za-z]+)? (?:street|st|avenue|ave|road|rd|drive|dr|lane|ln|court|ct|boulevard|blvd)\b`),
		Confidence: ConfAddress,
		Field:      "address",
	},
	{
		Type:       "City",
		Category:   types.CategoryPersonal,
		Re:         regexp.MustCompile(`(?i)\bi live in ([A-Za-z]+(?: [A-Za-z]+)?)\b`),
		Confidence: ConfCity,
		Field:      "city",
		Group:      1,
	},
	{
		Type:       "Zip Code",
		Category:   types.CategoryPersonal,
		Re:         regexp.MustCompile(`(?i)\bzip(?: code)? (?:is )?(\d{5})\b`),
		Confidence: ConfZip,
		Field:      "zip_code",
		Group:      1,
	},
}

// Date-of-birth grammars: slash, dash, dot and month-name forms.
var DOBPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:date of birth|birthday|born on|dob)(?: is)?[:\s]+(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(?i)\b(?:date of birth|birthday|born on|dob)(?: is)?[:\s]+(\d{1,2}-\d{1,2}-\d{2,4})`),
	regexp.MustCompile(`(?i)\b(?:date of birth|birthday|born on|dob)(?: is)?[:\s]+(\d{1,2}\.\d{1,2}\.\d{2,4})`),
	regexp.MustCompile(`(?i)\b(?:date of birth|birthday|born on|dob)(?: is)?[:\s]+((?:january|february|march|april|may|june|july|august|september|october|november|december) \d{1,2}(?:st|nd|rd|th)?,? \d{4})`),
}

// Age grammars: a direct statement, or a birth year the extractor converts.
var (
	AgeDirectRe    = regexp.MustCompile(`(?i)\b(?:i am|i'm) (\d{1,3})(?: years old)?\b`)
	AgeBirthYearRe = regexp.MustCompile(`(?i)\bborn in ((?:19|20)\d{2})\b`)
)

// Dollar amounts, currency-shaped.
var AmountRe = regexp.MustCompile(`\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?|\$\s?\d+(?:\.\d{2})?`)

// MedicarePartRe finds Part A / Part B mentions; the extractor scans the
// surrounding window for positive and negated cues.
var MedicarePartRe = regexp.MustCompile(`(?i)\bmedicare part ([ab])\b`)

var MedicarePositiveCues = []string{"yes", "i have", "i do have", "i've got", "i got", "already have", "currently have"}

var MedicareNegativeCues = []string{"don't have", "do not have", "dont have", "no i", "not enrolled", "haven't got", "without"}

// StateNames maps full state names to two-letter codes; StateCodes is the
// reverse set used for bare-code matching.
var StateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

var StateCodeRe = regexp.MustCompile(`\b(A[LKZR]|C[AOT]|DE|FL|GA|HI|I[DLNA]|K[SY]|LA|M[EDAINSOT]|N[EVHJMYCD]|O[HKR]|PA|RI|S[CD]|T[NX]|UT|V[TA]|W[AVIY])\b`)

// Fixed insurance vocabularies.
var InsuranceCompanies = []string{
	"aetna", "humana", "cigna", "blue cross", "blue shield", "united healthcare",
	"unitedhealthcare", "kaiser", "anthem", "wellcare", "mutual of omaha",
	"allstate", "state farm", "geico", "progressive", "metlife", "prudential",
}

var InsurancePlanTypes = []string{
	"medicare advantage", "medicare supplement", "medigap", "part d",
	"hmo", "ppo", "term life", "whole life", "final expense", "dental",
	"vision", "long term care",
}

// Loose term vocabularies: each hit yields one general fact of its category.
var MedicalTerms = []string{
	"diabetes", "blood pressure", "heart condition", "cancer", "arthritis",
	"medication", "prescription", "surgery", "hospital", "doctor visit",
	"copay", "chronic",
}

var FinancialTerms = []string{
	"premium", "deductible", "monthly payment", "social security", "pension",
	"fixed income", "retirement", "savings", "budget",
}

var GeneralTerms = []string{
	"appointment", "voicemail", "callback", "mailing address", "power of attorney",
	"beneficiary", "spouse",
}

// StopWords are common words rejected when matched as a city or name.
var StopWords = map[string]bool{
	"the": true, "and": true, "that": true, "this": true, "with": true,
	"have": true, "from": true, "your": true, "about": true, "would": true,
	"there": true, "their": true, "here": true, "okay": true, "yes": true,
	"sir": true, "maam": true, "a": true, "an": true, "it": true,
}

// --------------------------------------------
// Heuristic scorer phrase lists (one distinct
// phrase found = +0.5 on that category).
// --------------------------------------------

var CommunicationPhrases = []string{
	"thank you", "please", "i understand", "certainly", "absolutely",
	"of course", "my pleasure", "appreciate", "great question", "to clarify",
}

var ProblemSolvingPhrases = []string{
	"let me help", "i can", "we can", "resolve", "solution", "figure out",
	"take care of", "look into", "fix", "sort this out",
}

var ProductKnowledgePhrases = []string{
	"coverage", "policy", "premium", "deductible", "benefits", "medicare",
	"enrollment", "plan options", "network", "copay",
}

var CustomerServicePhrases = []string{
	"happy to", "glad to", "how can i help", "anything else", "have a great day",
	"sorry", "apologize", "no problem", "you're welcome", "valued",
}

// --------------------------------------------
// Speaker attribution cue sets. Agent and
// customer cues are independent; a clause
// matching neither alternates speakers.
// --------------------------------------------

var AgentCues = []string{
	"licensed agent", "let me help", "i'll need to", "i will need",
	"calling from", "my name is", "can you verify", "for quality purposes",
	"let me pull up", "i can offer", "do you currently have", "are you enrolled",
	"let me check", "i'd be happy to", "thank you for calling",
}

var CustomerCues = []string{
	"i have", "i don't", "i do not", "yes i", "no i", "my husband", "my wife",
	"i'm not interested", "i already have", "i was wondering", "i got a letter",
	"how much", "i can't afford",
}

// Event cue lists for call-flow annotation.
var (
	IntroductionCues  = []string{"licensed agent", "my name is", "calling from"}
	AcknowledgeCues   = []string{"okay", "ok", "yes", "sure", "alright", "uh huh", "go ahead"}
	HoldCues          = []string{"hold", "wait", "moment"}
	TransferCues      = []string{"transfer", "specialist"}
	AutoAttendantCues = []string{"automated", "system", "press"}
)

// --------------------------------------------
// Analyzer vocabularies
// --------------------------------------------

var PositiveWords = []string{
	"great", "thank", "perfect", "wonderful", "happy", "appreciate", "good",
	"excellent", "helpful", "yes", "interested", "love",
}

var NegativeWords = []string{
	"no", "not", "frustrated", "angry", "upset", "cancel", "terrible",
	"waste", "annoyed", "scam", "stop calling", "expensive",
}

// IntentVocabulary maps each intent label to its cue phrases.
var IntentVocabulary = map[string][]string{
	"enrollment":   {"sign up", "enroll", "get started", "apply", "join"},
	"quote":        {"quote", "how much", "price", "cost", "rates"},
	"support":      {"help with", "problem with", "issue", "not working", "question about"},
	"cancellation": {"cancel", "stop my", "end my", "terminate", "remove me"},
	"billing":      {"bill", "payment", "charge", "invoice", "refund"},
}

var ConversionPositiveCues = []string{
	"sign me up", "sounds good", "let's do it", "i'm interested", "yes please",
	"go ahead", "that works", "when can we start",
}

var ConversionNegativeCues = []string{
	"not interested", "no thank you", "too expensive", "can't afford",
	"stop calling", "remove me", "already have", "think about it",
}

var FillerWords = []string{"um", "uh", "like", "you know", "basically", "actually", "literally"}

var PolitenessWords = []string{"please", "thank you", "thanks", "appreciate", "sorry", "excuse me"}

var ClosingSaleCues = []string{"welcome aboard", "you're all set", "enrolled you", "confirmation number"}

var CallbackCues = []string{"call you back", "follow up", "reach back", "better time", "call me tomorrow"}

var EscalationCues = []string{"supervisor", "manager", "escalate", "complaint"}
