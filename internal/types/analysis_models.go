// internal/types/analysis_models.go
package types

// --------------------------------------------
// Heuristic category scores (1-10 each)
// --------------------------------------------
type CategoryScores struct {
	CommunicationSkills float64 `json:"communication_skills"`
	ProblemSolving      float64 `json:"problem_solving"`
	ProductKnowledge    float64 `json:"product_knowledge"`
	CustomerService     float64 `json:"customer_service"`
}

type Rating string

const (
	RatingGood Rating = "GOOD"
	RatingBad  Rating = "BAD"
	RatingUgly Rating = "UGLY"
)

// --------------------------------------------
// Pluggable analyzer stage results. Each has a
// default constructor used by the resilient
// stage executor when the stage fails or
// returns an invalid result.
// --------------------------------------------

type SentimentResult struct {
	Overall          string   `json:"overall"` // positive | neutral | negative
	Score            float64  `json:"score"`   // -1..1
	Customer         string   `json:"customer"`
	Agent            string   `json:"agent"`
	EmotionalJourney []string `json:"emotional_journey"`
}

func DefaultSentiment() SentimentResult {
	return SentimentResult{
		Overall:          "neutral",
		Score:            0,
		Customer:         "neutral",
		Agent:            "neutral",
		EmotionalJourney: []string{"steady"},
	}
}

type IntentResult struct {
	Primary    string   `json:"primary"`
	Confidence float64  `json:"confidence"` // 0-100
	Secondary  []string `json:"secondary"`
}

func DefaultIntent() IntentResult {
	return IntentResult{Primary: "general_inquiry", Confidence: 30, Secondary: []string{}}
}

type BusinessConversionResult struct {
	Outcome         string   `json:"outcome"` // converted | interested | follow_up_needed | not_interested
	Probability     float64  `json:"probability"`
	PositiveSignals []string `json:"positive_signals"`
	NegativeSignals []string `json:"negative_signals"`
}

func DefaultBusinessConversion() BusinessConversionResult {
	return BusinessConversionResult{
		Outcome:         "follow_up_needed",
		Probability:     0.25,
		PositiveSignals: []string{},
		NegativeSignals: []string{},
	}
}

type CallMetricsResult struct {
	TotalWords           int     `json:"total_words"`
	AgentWords           int     `json:"agent_words"`
	CustomerWords        int     `json:"customer_words"`
	QuestionCount        int     `json:"question_count"`
	InterruptionCount    int     `json:"interruption_count"`
	EstimatedDurationSec float64 `json:"estimated_duration_sec"`
	AgentTalkRatio       float64 `json:"agent_talk_ratio"`
}

func DefaultCallMetrics() CallMetricsResult {
	return CallMetricsResult{AgentTalkRatio: 0.5}
}

type VocalAnalyticsResult struct {
	FillerWordRate    float64 `json:"filler_word_rate"` // fillers per 100 words
	PolitenessMarkers int     `json:"politeness_markers"`
	Exclamations      int     `json:"exclamations"`
	EnergyLevel       string  `json:"energy_level"` // low | moderate | high
}

func DefaultVocalAnalytics() VocalAnalyticsResult {
	return VocalAnalyticsResult{EnergyLevel: "moderate"}
}

type PreciseScoringResult struct {
	Overall    float64            `json:"overall"` // 0-100
	Dimensions map[string]float64 `json:"dimensions"`
}

func DefaultPreciseScoring() PreciseScoringResult {
	return PreciseScoringResult{Overall: 50, Dimensions: map[string]float64{}}
}

type DispositionResult struct {
	Disposition string  `json:"disposition"` // sale | callback | not_interested | service_resolved | escalated | no_decision
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
}

func DefaultDisposition() DispositionResult {
	return DispositionResult{Disposition: "no_decision", Confidence: 30, Reason: "no clear outcome signals"}
}

// --------------------------------------------
// Narrative summary + conversation flow
// --------------------------------------------

type SpeakerBalance struct {
	AgentPercentage    float64 `json:"agent_percentage"`
	CustomerPercentage float64 `json:"customer_percentage"`
}

type ConversationFlow struct {
	TotalTurns      int            `json:"total_turns"`
	AvgSegmentWords float64        `json:"avg_segment_words"`
	SpeakerBalance  SpeakerBalance `json:"speaker_balance"`
	BalanceLabel    string         `json:"balance_label"` // agent_dominated | customer_dominated | balanced
	Events          []string       `json:"events"`
}

type NarrativeSummary struct {
	Summary          string           `json:"summary"`
	TopicsCovered    []string         `json:"topics_covered"`
	KeyTakeaways     []string         `json:"key_takeaways"`
	CallConclusion   string           `json:"call_conclusion"`
	CallDetails      []string         `json:"call_details"`
	KeyPoints        []string         `json:"key_points"`
	ActionItems      []string         `json:"action_items"`
	ConversationFlow ConversationFlow `json:"conversation_flow"`
}

// --------------------------------------------
// Quality metric rollups (percent scales)
// --------------------------------------------
type QualityMetrics struct {
	CustomerSatisfactionPct float64 `json:"customer_satisfaction_pct"`
	AgentEffectivenessPct   float64 `json:"agent_effectiveness_pct"`
	ResolutionSuccessScore  float64 `json:"resolution_success_score"`
}

// --------------------------------------------
// FINAL output delivered to the caller. Every
// sub-field is always populated: failed stages
// are replaced by their defaults.
// --------------------------------------------
type AnalysisResult struct {
	OverallRating      Rating                   `json:"overall_rating"`
	OverallScore       float64                  `json:"overall_score"`
	CategoryScores     CategoryScores           `json:"category_scores"`
	Sentiment          SentimentResult          `json:"sentiment"`
	Intent             IntentResult             `json:"intent"`
	BusinessConversion BusinessConversionResult `json:"business_conversion"`
	CallMetrics        CallMetricsResult        `json:"call_metrics"`
	VocalAnalytics     VocalAnalyticsResult     `json:"vocal_analytics"`
	PreciseScoring     PreciseScoringResult     `json:"precise_scoring"`
	Disposition        DispositionResult        `json:"disposition"`
	Extraction         ExtractionResult         `json:"extraction"`
	Segments           []TranscriptSegment      `json:"segments"`
	Summary            NarrativeSummary         `json:"summary"`
	QualityMetrics     QualityMetrics           `json:"quality_metrics"`
	DurationMs         int64                    `json:"duration_ms"`
}
