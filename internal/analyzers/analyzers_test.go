package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call-insights-go/internal/types"
)

func TestSentimentLabels(t *testing.T) {
	pos, err := Sentiment("this is great, thank you so much, wonderful and very helpful", nil)
	require.NoError(t, err)
	assert.Equal(t, "positive", pos.Overall)
	assert.Greater(t, pos.Score, 0.0)

	neg, err := Sentiment("terrible, I am frustrated and angry, cancel everything", nil)
	require.NoError(t, err)
	assert.Equal(t, "negative", neg.Overall)
	assert.Less(t, neg.Score, 0.0)

	neu, err := Sentiment("the meeting is on tuesday", nil)
	require.NoError(t, err)
	assert.Equal(t, "neutral", neu.Overall)
	assert.Equal(t, 0.0, neu.Score)
	assert.NotEmpty(t, neu.EmotionalJourney)
}

func TestSentimentScoreBounds(t *testing.T) {
	for _, tr := range []string{"", "great great great", "terrible terrible", "great terrible"} {
		res, err := Sentiment(tr, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score, -1.0)
		assert.LessOrEqual(t, res.Score, 1.0)
	}
}

func TestSentimentPerSpeaker(t *testing.T) {
	segs := []types.TranscriptSegment{
		{Speaker: types.SpeakerA, Content: "wonderful, happy to help, great"},
		{Speaker: types.SpeakerB, Content: "this is terrible and I am upset"},
	}
	res, err := Sentiment("wonderful, happy to help, great. this is terrible and I am upset", segs)
	require.NoError(t, err)
	assert.Equal(t, "positive", res.Agent)
	assert.Equal(t, "negative", res.Customer)
}

func TestIntentClassification(t *testing.T) {
	tests := []struct {
		transcript string
		want       string
	}{
		{"I want to cancel my policy and end my coverage", "cancellation"},
		{"how much does it cost, what are the rates", "quote"},
		{"I'd like to enroll and get started today", "enrollment"},
		{"there is a charge on my bill I need a refund for", "billing"},
		{"just the weather today", "general_inquiry"},
	}
	for _, tt := range tests {
		res, err := Intent(tt.transcript)
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.Primary, tt.transcript)
		assert.GreaterOrEqual(t, res.Confidence, 0.0)
		assert.LessOrEqual(t, res.Confidence, 100.0)
		assert.NotNil(t, res.Secondary)
	}
}

func TestBusinessConversionOutcomes(t *testing.T) {
	intent := types.IntentResult{Primary: "enrollment", Confidence: 80, Secondary: []string{}}
	posSent := types.SentimentResult{Overall: "positive", Score: 0.5}

	converted, err := BusinessConversion(
		"sounds good, sign me up, let's do it, go ahead. welcome aboard, you're all set",
		intent, posSent)
	require.NoError(t, err)
	assert.Equal(t, "converted", converted.Outcome)
	assert.NotEmpty(t, converted.PositiveSignals)

	declined, err := BusinessConversion(
		"not interested, too expensive, stop calling me, remove me from your list",
		types.IntentResult{Primary: "cancellation"}, types.SentimentResult{Score: -0.8})
	require.NoError(t, err)
	assert.Equal(t, "not_interested", declined.Outcome)
	assert.NotEmpty(t, declined.NegativeSignals)

	assert.GreaterOrEqual(t, converted.Probability, 0.0)
	assert.LessOrEqual(t, converted.Probability, 1.0)
	assert.GreaterOrEqual(t, declined.Probability, 0.0)
}

func TestCallMetrics(t *testing.T) {
	segs := []types.TranscriptSegment{
		{Speaker: types.SpeakerA, Content: "how are you doing today"},
		{Speaker: types.SpeakerB, Content: "fine"},
		{Speaker: types.SpeakerA, Content: "good to hear"},
	}
	res, err := CallMetrics("how are you doing today? fine. good to hear.", segs, types.ProviderMeta{})
	require.NoError(t, err)

	assert.Equal(t, 9, res.TotalWords)
	assert.Equal(t, 8, res.AgentWords)
	assert.Equal(t, 1, res.CustomerWords)
	assert.Equal(t, 1, res.QuestionCount)
	assert.Equal(t, 1, res.InterruptionCount) // "fine" breaks the agent turn
	assert.Greater(t, res.EstimatedDurationSec, 0.0)
	assert.InDelta(t, 8.0/9.0, res.AgentTalkRatio, 0.01)
}

func TestCallMetricsPrefersProviderDuration(t *testing.T) {
	res, err := CallMetrics("one two three", nil, types.ProviderMeta{DurationSec: 93})
	require.NoError(t, err)
	assert.Equal(t, 93.0, res.EstimatedDurationSec)
}

func TestVocalAnalytics(t *testing.T) {
	res, err := VocalAnalytics("um well uh I think um we should basically go! Really go! Now go!")
	require.NoError(t, err)

	assert.Greater(t, res.FillerWordRate, 0.0)
	assert.Equal(t, 3, res.Exclamations)
	assert.Equal(t, "high", res.EnergyLevel)

	calm, err := VocalAnalytics("short calm note")
	require.NoError(t, err)
	assert.Equal(t, "low", calm.EnergyLevel)
}

func TestPreciseScoring(t *testing.T) {
	cats := types.CategoryScores{CommunicationSkills: 7, ProblemSolving: 6, ProductKnowledge: 5, CustomerService: 8}
	conv := types.BusinessConversionResult{Outcome: "interested", Probability: 0.6}

	res, err := PreciseScoring(cats, 6.5, conv)
	require.NoError(t, err)

	assert.InDelta(t, 6.5*10*0.8+60*0.2, res.Overall, 0.01)
	assert.Equal(t, 70.0, res.Dimensions["communication"])
	assert.Equal(t, 60.0, res.Dimensions["conversion"])
}

func TestDispositionRules(t *testing.T) {
	intent := types.IntentResult{Primary: "support"}
	followUp := types.BusinessConversionResult{Outcome: "follow_up_needed"}

	tests := []struct {
		name       string
		transcript string
		conv       types.BusinessConversionResult
		want       string
	}{
		{"sale from closing cue", "you're all set, welcome aboard", followUp, "sale"},
		{"escalation", "let me speak to your supervisor", followUp, "escalated"},
		{"decline", "I'm not interested at all", followUp, "not_interested"},
		{"callback", "call you back tomorrow then", followUp, "callback"},
		{"resolved support", "glad we got that resolved", followUp, "service_resolved"},
		{"no signals", "talking about nothing much", followUp, "no_decision"},
	}
	for _, tt := range tests {
		res, err := Disposition(tt.transcript, intent, tt.conv)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, res.Disposition, tt.name)
	}

	converted, err := Disposition("plain text", intent, types.BusinessConversionResult{Outcome: "converted"})
	require.NoError(t, err)
	assert.Equal(t, "sale", converted.Disposition)
}
