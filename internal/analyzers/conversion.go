package analyzers

import (
	"math"
	"strings"

	"call-insights-go/internal/patterns"
	"call-insights-go/internal/types"
)

// intentBaseProbability seeds the conversion estimate before signal counting.
var intentBaseProbability = map[string]float64{
	"enrollment":      0.5,
	"quote":           0.4,
	"billing":         0.3,
	"support":         0.25,
	"general_inquiry": 0.2,
	"cancellation":    0.1,
}

// BusinessConversion estimates the sale outcome from lexical buy/decline
// signals combined with the upstream intent and sentiment stages.
func BusinessConversion(transcript string, intent types.IntentResult, sentiment types.SentimentResult) (types.BusinessConversionResult, error) {
	lower := strings.ToLower(transcript)

	positives := matchedCues(lower, patterns.ConversionPositiveCues)
	negatives := matchedCues(lower, patterns.ConversionNegativeCues)

	prob := intentBaseProbability[intent.Primary]
	if prob == 0 {
		prob = 0.2
	}
	prob += 0.1 * float64(len(positives))
	prob -= 0.12 * float64(len(negatives))
	prob += 0.1 * sentiment.Score
	prob = math.Round(clamp01(prob)*100) / 100

	outcome := "follow_up_needed"
	switch {
	case prob >= 0.75 && containsAny(lower, patterns.ClosingSaleCues):
		outcome = "converted"
	case prob >= 0.5:
		outcome = "interested"
	case prob <= 0.2:
		outcome = "not_interested"
	}

	return types.BusinessConversionResult{
		Outcome:         outcome,
		Probability:     prob,
		PositiveSignals: positives,
		NegativeSignals: negatives,
	}, nil
}

func matchedCues(lower string, cues []string) []string {
	out := []string{}
	for _, c := range cues {
		if strings.Contains(lower, c) {
			out = append(out, c)
		}
	}
	return out
}

func containsAny(s string, cues []string) bool {
	for _, c := range cues {
		if strings.Contains(s, c) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
