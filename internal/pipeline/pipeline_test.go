package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-insights-go/internal/extractor"
	"call-insights-go/internal/types"
)

const sampleTranscript = "Thank you for calling, my name is Sam from Acme Insurance. " +
	"I have a question about Medicare. Certainly, let me help you with enrollment. " +
	"My email is jane.doe@example.com. Sounds good, sign me up."

func TestAnalyzeEmptyTranscriptFails(t *testing.T) {
	orch := New(extractor.New())

	for _, tr := range []string{"", "   ", "\n\t"} {
		_, err := orch.Analyze(types.AnalysisRequest{Transcript: tr})
		require.Error(t, err)

		var failed *AnalysisFailedError
		assert.ErrorAs(t, err, &failed)
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	orch := New(extractor.New())

	res, err := orch.Analyze(types.AnalysisRequest{Transcript: sampleTranscript})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.OverallScore, 1.0)
	assert.LessOrEqual(t, res.OverallScore, 10.0)
	assert.NotEmpty(t, res.OverallRating)
	assert.NotEmpty(t, res.Sentiment.Overall)
	assert.NotEmpty(t, res.Intent.Primary)
	assert.NotEmpty(t, res.BusinessConversion.Outcome)
	assert.NotEmpty(t, res.Disposition.Disposition)
	assert.NotEmpty(t, res.Segments)
	assert.NotEmpty(t, res.Summary.TopicsCovered)
	assert.NotEmpty(t, res.Extraction.ExtractedFacts)

	// email fact makes it into the aggregate
	assert.Equal(t, "jane.doe@example.com", res.Extraction.ContactInfo.Email)

	// speaker balance invariant holds through the full pipeline
	sb := res.Summary.ConversationFlow.SpeakerBalance
	assert.InDelta(t, 100.0, sb.AgentPercentage+sb.CustomerPercentage, 0.0001)
}

func brokenStages() Stages {
	boom := errors.New("stage exploded")
	return Stages{
		Sentiment: func(string, []types.TranscriptSegment) (types.SentimentResult, error) {
			return types.SentimentResult{}, boom
		},
		Intent: func(string) (types.IntentResult, error) {
			panic("intent analyzer panicked")
		},
		BusinessConversion: func(string, types.IntentResult, types.SentimentResult) (types.BusinessConversionResult, error) {
			return types.BusinessConversionResult{}, boom
		},
		CallMetrics: func(string, []types.TranscriptSegment, types.ProviderMeta) (types.CallMetricsResult, error) {
			panic("metrics analyzer panicked")
		},
		VocalAnalytics: func(string) (types.VocalAnalyticsResult, error) {
			// invalid: empty energy level
			return types.VocalAnalyticsResult{}, nil
		},
		PreciseScoring: func(types.CategoryScores, float64, types.BusinessConversionResult) (types.PreciseScoringResult, error) {
			// invalid: nil dimensions
			return types.PreciseScoringResult{}, nil
		},
		Disposition: func(string, types.IntentResult, types.BusinessConversionResult) (types.DispositionResult, error) {
			return types.DispositionResult{}, boom
		},
	}
}

func TestEveryBrokenStageFallsBackToDefaults(t *testing.T) {
	orch := NewWithStages(extractor.New(), brokenStages())

	res, err := orch.Analyze(types.AnalysisRequest{Transcript: sampleTranscript})
	require.NoError(t, err, "stage failures must never abort the pipeline")

	assert.Equal(t, types.DefaultSentiment(), res.Sentiment)
	assert.Equal(t, types.DefaultIntent(), res.Intent)
	assert.Equal(t, types.DefaultBusinessConversion(), res.BusinessConversion)
	assert.Equal(t, types.DefaultCallMetrics(), res.CallMetrics)
	assert.Equal(t, types.DefaultVocalAnalytics(), res.VocalAnalytics)
	assert.Equal(t, types.DefaultPreciseScoring(), res.PreciseScoring)
	assert.Equal(t, types.DefaultDisposition(), res.Disposition)

	// scoring, extraction, attribution and summary still run for real
	assert.NotEmpty(t, res.OverallRating)
	assert.NotEmpty(t, res.Segments)
	assert.NotEmpty(t, res.Extraction.ExtractedFacts)
	assert.NotEmpty(t, res.Summary.Summary)
	assert.NotEmpty(t, res.Summary.ActionItems)
}

func TestNewWithStagesFillsNilEntries(t *testing.T) {
	orch := NewWithStages(extractor.New(), Stages{
		Sentiment: func(string, []types.TranscriptSegment) (types.SentimentResult, error) {
			return types.SentimentResult{}, errors.New("down")
		},
	})

	res, err := orch.Analyze(types.AnalysisRequest{Transcript: sampleTranscript})
	require.NoError(t, err)

	assert.Equal(t, types.DefaultSentiment(), res.Sentiment)
	// the untouched stages still produce live results
	assert.NotEqual(t, types.DefaultIntent(), res.Intent)
}

func TestQualityMetricsRanges(t *testing.T) {
	orch := New(extractor.New())

	res, err := orch.Analyze(types.AnalysisRequest{Transcript: sampleTranscript})
	require.NoError(t, err)

	qm := res.QualityMetrics
	assert.GreaterOrEqual(t, qm.CustomerSatisfactionPct, 0.0)
	assert.LessOrEqual(t, qm.CustomerSatisfactionPct, 100.0)
	assert.GreaterOrEqual(t, qm.AgentEffectivenessPct, 0.0)
	assert.LessOrEqual(t, qm.AgentEffectivenessPct, 100.0)
	assert.GreaterOrEqual(t, qm.ResolutionSuccessScore, 0.0)
	assert.LessOrEqual(t, qm.ResolutionSuccessScore, 100.0)
}

func TestProviderMetaFlowsIntoMetrics(t *testing.T) {
	orch := New(extractor.New())

	res, err := orch.Analyze(types.AnalysisRequest{
		Transcript:     sampleTranscript,
		ProviderResult: []byte(`{"duration_sec": 187.5}`),
	})
	require.NoError(t, err)
	assert.Equal(t, 187.5, res.CallMetrics.EstimatedDurationSec)
}
