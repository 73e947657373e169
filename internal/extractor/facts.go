// Package extractor scans a transcript against the pattern library and
// produces typed, confidence-scored facts plus the denormalized
// personal/contact/insurance projections.
package extractor

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"call-insights-go/internal/logger"
	"call-insights-go/internal/patterns"
	"call-insights-go/internal/types"
)

const contextWindow = 100 // chars each side of a match

// Service is an explicitly constructed, stateless fact extractor. It is safe
// for concurrent use; all working state is per-call.
type Service struct {
	log *logrus.Entry
}

func New() *Service {
	return &Service{log: logger.New().WithField("component", "extractor")}
}

// ExtractFacts scans the full transcript for every non-overlapping match of
// every pattern. It never fails: no matches simply yields an empty fact list
// and zero confidence. Values rejected by validation are dropped silently.
// The same value matched by two overlapping patterns yields two facts; the
// fact list is append-only while the projections are last-write-wins.
func (s *Service) ExtractFacts(transcript string) types.ExtractionResult {
	res := types.ExtractionResult{ExtractedFacts: []types.ExtractedFact{}}

	s.scanPatternSet(transcript, patterns.ContactPatterns, &res)
	s.scanPatternSet(transcript, patterns.PersonalPatterns, &res)
	s.scanDatesOfBirth(transcript, &res)
	s.scanAge(transcript, &res)
	s.scanState(transcript, &res)
	s.scanMedicareParts(transcript, &res)
	s.scanInsuranceVocab(transcript, &res)
	s.scanAmounts(transcript, &res)
	s.scanTermVocab(transcript, patterns.MedicalTerms, types.CategoryMedical, "Medical Term", patterns.ConfMedical, &res)
	s.scanTermVocab(transcript, patterns.FinancialTerms, types.CategoryFinancial, "Financial Term", patterns.ConfFinancial, &res)
	s.scanTermVocab(transcript, patterns.GeneralTerms, types.CategoryGeneral, "General Note", patterns.ConfGeneral, &res)

	res.Confidence = meanConfidence(res.ExtractedFacts)

	s.log.WithFields(logrus.Fields{
		"facts":      len(res.ExtractedFacts),
		"confidence": res.Confidence,
	}).Debug("extraction finished")
	return res
}

func (s *Service) scanPatternSet(transcript string, set []patterns.FactPattern, res *types.ExtractionResult) {
	for _, p := range set {
		for _, loc := range p.Re.FindAllStringSubmatchIndex(transcript, -1) {
			start, end := loc[0], loc[1]
			vs, ve := start, end
			if p.Group > 0 && len(loc) > 2*p.Group+1 && loc[2*p.Group] >= 0 {
				vs, ve = loc[2*p.Group], loc[2*p.Group+1]
			}
			value := strings.TrimSpace(transcript[vs:ve])
			if !validValue(p.Type, value) {
				continue
			}
			res.ExtractedFacts = append(res.ExtractedFacts, newFact(
				p.Category, p.Type, value, p.Confidence,
				window(transcript, start, end), types.SourceTranscript,
			))
			applyProjection(res, p.Field, value)
		}
	}
}

func (s *Service) scanDatesOfBirth(transcript string, res *types.ExtractionResult) {
	for _, re := range patterns.DOBPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(transcript, -1) {
			if len(loc) < 4 || loc[2] < 0 {
				continue
			}
			value := strings.TrimSpace(transcript[loc[2]:loc[3]])
			if value == "" {
				continue
			}
			res.ExtractedFacts = append(res.ExtractedFacts, newFact(
				types.CategoryPersonal, "Date of Birth", value, patterns.ConfDOB,
				window(transcript, loc[0], loc[1]), types.SourceTranscript,
			))
			res.PersonalInfo.DateOfBirth = value
		}
	}
}

func (s *Service) scanAge(transcript string, res *types.ExtractionResult) {
	for _, loc := range patterns.AgeDirectRe.FindAllStringSubmatchIndex(transcript, -1) {
		raw := transcript[loc[2]:loc[3]]
		age, err := strconv.Atoi(raw)
		if err != nil || age < 10 || age > 115 {
			continue // ValidationFailure: silently dropped
		}
		res.ExtractedFacts = append(res.ExtractedFacts, newFact(
			types.CategoryPersonal, "Age", raw, patterns.ConfAge,
			window(transcript, loc[0], loc[1]), types.SourceTranscript,
		))
		res.PersonalInfo.Age = raw
	}

	// Infer age from a stated birth year.
	for _, loc := range patterns.AgeBirthYearRe.FindAllStringSubmatchIndex(transcript, -1) {
		year, err := strconv.Atoi(transcript[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		age := time.Now().Year() - year
		if age < 10 || age > 115 {
			continue
		}
		value := strconv.Itoa(age)
		res.ExtractedFacts = append(res.ExtractedFacts, newFact(
			types.CategoryPersonal, "Age", value, patterns.ConfAge,
			window(transcript, loc[0], loc[1]), types.SourceInferred,
		))
		res.PersonalInfo.Age = value
	}
}

func (s *Service) scanState(transcript string, res *types.ExtractionResult) {
	lower := strings.ToLower(transcript)

	// Full state names, bare or mid-sentence. Names are walked in sorted
	// order so repeated runs emit facts in the same order.
	names := make([]string, 0, len(patterns.StateNames))
	for name := range patterns.StateNames {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		code := patterns.StateNames[name]
		idx := strings.Index(lower, name)
		if idx == -1 {
			continue
		}
		res.ExtractedFacts = append(res.ExtractedFacts, newFact(
			types.CategoryPersonal, "State", code, patterns.ConfState,
			window(transcript, idx, idx+len(name)), types.SourceTranscript,
		))
		res.PersonalInfo.State = code
	}

	// Two-letter codes; only uppercase forms to avoid matching plain words.
	for _, loc := range patterns.StateCodeRe.FindAllStringIndex(transcript, -1) {
		code := transcript[loc[0]:loc[1]]
		res.ExtractedFacts = append(res.ExtractedFacts, newFact(
			types.CategoryPersonal, "State", code, patterns.ConfState,
			window(transcript, loc[0], loc[1]), types.SourceTranscript,
		))
		res.PersonalInfo.State = code
	}
}

// scanMedicareParts detects explicit Part A / Part B yes-no statements. A
// negated cue near the mention flips polarity to "No"; with neither cue in
// the window no fact is emitted at all (absence of "yes" is not "No").
func (s *Service) scanMedicareParts(transcript string, res *types.ExtractionResult) {
	lower := strings.ToLower(transcript)
	for _, loc := range patterns.MedicarePartRe.FindAllStringSubmatchIndex(lower, -1) {
		part := strings.ToUpper(lower[loc[2]:loc[3]])
		win := strings.ToLower(window(transcript, loc[0], loc[1]))

		value := ""
		if containsAny(win, patterns.MedicareNegativeCues) {
			value = "No"
		} else if containsAny(win, patterns.MedicarePositiveCues) {
			value = "Yes"
		}
		if value == "" {
			continue
		}
		res.ExtractedFacts = append(res.ExtractedFacts, newFact(
			types.CategoryInsurance, "Medicare Part "+part, value, patterns.ConfMedicare,
			window(transcript, loc[0], loc[1]), types.SourceTranscript,
		))
		if part == "A" {
			res.InsuranceInfo.MedicarePartA = value
		} else {
			res.InsuranceInfo.MedicarePartB = value
		}
	}
}

func (s *Service) scanInsuranceVocab(transcript string, res *types.ExtractionResult) {
	lower := strings.ToLower(transcript)
	for _, company := range patterns.InsuranceCompanies {
		idx := strings.Index(lower, company)
		if idx == -1 {
			continue
		}
		value := strings.Title(company)
		res.ExtractedFacts = append(res.ExtractedFacts, newFact(
			types.CategoryInsurance, "Insurance Company", value, patterns.ConfInsurance,
			window(transcript, idx, idx+len(company)), types.SourceTranscript,
		))
		res.InsuranceInfo.Company = value
	}
	for _, plan := range patterns.InsurancePlanTypes {
		idx := strings.Index(lower, plan)
		if idx == -1 {
			continue
		}
		value := strings.Title(plan)
		res.ExtractedFacts = append(res.ExtractedFacts, newFact(
			types.CategoryInsurance, "Insurance Type", value, patterns.ConfInsurance,
			window(transcript, idx, idx+len(plan)), types.SourceTranscript,
		))
		res.InsuranceInfo.PlanType = value
	}
}

func (s *Service) scanAmounts(transcript string, res *types.ExtractionResult) {
	lower := strings.ToLower(transcript)
	for _, loc := range patterns.AmountRe.FindAllStringIndex(transcript, -1) {
		value := strings.ReplaceAll(transcript[loc[0]:loc[1]], " ", "")
		ctx := window(transcript, loc[0], loc[1])
		res.ExtractedFacts = append(res.ExtractedFacts, newFact(
			types.CategoryFinancial, "Dollar Amount", value, patterns.ConfAmount,
			ctx, types.SourceTranscript,
		))
		// A premium mentioned near the amount feeds the insurance projection.
		ws := loc[0] - 60
		if ws < 0 {
			ws = 0
		}
		if strings.Contains(lower[ws:loc[0]], "premium") || strings.Contains(lower[ws:loc[0]], "per month") {
			res.InsuranceInfo.MonthlyPremium = value
		}
	}
}

func (s *Service) scanTermVocab(transcript string, terms []string, cat types.FactCategory, factType string, conf float64, res *types.ExtractionResult) {
	lower := strings.ToLower(transcript)
	for _, term := range terms {
		idx := strings.Index(lower, term)
		if idx == -1 {
			continue
		}
		res.ExtractedFacts = append(res.ExtractedFacts, newFact(
			cat, factType, term, conf,
			window(transcript, idx, idx+len(term)), types.SourceTranscript,
		))
	}
}

func newFact(cat types.FactCategory, factType, value string, conf float64, ctx, source string) types.ExtractedFact {
	return types.ExtractedFact{
		ID:         uuid.New().String(),
		Category:   cat,
		Type:       factType,
		Value:      value,
		Confidence: conf,
		Context:    ctx,
		Verified:   false,
		Source:     source,
	}
}

// validValue applies the per-type rejection rules: numeric-looking names,
// over/under-length strings, stop words misread as cities.
func validValue(factType, value string) bool {
	if len(value) < 2 || len(value) > 80 {
		return false
	}
	switch factType {
	case "Full Name", "City":
		for _, r := range value {
			if unicode.IsDigit(r) {
				return false
			}
		}
		if patterns.StopWords[strings.ToLower(value)] {
			return false
		}
	}
	return true
}

func applyProjection(res *types.ExtractionResult, field, value string) {
	switch field {
	case "email":
		res.ContactInfo.Email = value
	case "phone":
		res.ContactInfo.Phone = value
	case "name":
		res.PersonalInfo.Name = value
	case "address":
		res.PersonalInfo.Address = value
	case "city":
		res.PersonalInfo.City = value
	case "zip_code":
		res.PersonalInfo.ZipCode = value
	}
}

func window(s string, start, end int) string {
	ws := start - contextWindow
	if ws < 0 {
		ws = 0
	}
	we := end + contextWindow
	if we > len(s) {
		we = len(s)
	}
	return s[ws:we]
}

func containsAny(s string, cues []string) bool {
	for _, c := range cues {
		if strings.Contains(s, c) {
			return true
		}
	}
	return false
}

func meanConfidence(facts []types.ExtractedFact) float64 {
	if len(facts) == 0 {
		return 0
	}
	sum := 0.0
	for _, f := range facts {
		sum += f.Confidence
	}
	// keep one decimal so the JSON stays readable
	return math.Round(sum/float64(len(facts))*10) / 10
}
