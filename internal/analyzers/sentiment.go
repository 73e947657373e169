// Package analyzers holds the pluggable pipeline stages. Every analyzer is a
// pure function of its inputs returning (result, error); the pipeline runs
// each one through the resilient stage executor with a typed default.
package analyzers

import (
	"math"
	"strings"

	"call-insights-go/internal/patterns"
	"call-insights-go/internal/types"
)

// Sentiment derives an overall label and a score in [-1,1] from positive and
// negative word counts, with per-speaker sub-labels from the attributed
// segments and a coarse three-phase emotional journey.
func Sentiment(transcript string, segments []types.TranscriptSegment) (types.SentimentResult, error) {
	lower := strings.ToLower(transcript)

	pos := countOccurrences(lower, patterns.PositiveWords)
	neg := countOccurrences(lower, patterns.NegativeWords)

	score := 0.0
	if pos+neg > 0 {
		score = float64(pos-neg) / float64(pos+neg)
	}
	score = math.Round(score*100) / 100

	res := types.SentimentResult{
		Overall:          labelFor(score),
		Score:            score,
		Customer:         speakerLabel(segments, types.SpeakerB),
		Agent:            speakerLabel(segments, types.SpeakerA),
		EmotionalJourney: journey(lower),
	}
	return res, nil
}

func labelFor(score float64) string {
	switch {
	case score > 0.15:
		return "positive"
	case score < -0.15:
		return "negative"
	default:
		return "neutral"
	}
}

func speakerLabel(segments []types.TranscriptSegment, sp types.Speaker) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Speaker == sp {
			b.WriteString(strings.ToLower(s.Content))
			b.WriteByte(' ')
		}
	}
	text := b.String()
	pos := countOccurrences(text, patterns.PositiveWords)
	neg := countOccurrences(text, patterns.NegativeWords)
	if pos+neg == 0 {
		return "neutral"
	}
	return labelFor(float64(pos-neg) / float64(pos+neg))
}

// journey labels the opening, middle and closing thirds of the call.
func journey(lower string) []string {
	n := len(lower)
	if n < 30 {
		return []string{"steady"}
	}
	phases := []string{lower[:n/3], lower[n/3 : 2*n/3], lower[2*n/3:]}
	out := make([]string, 0, 3)
	for _, p := range phases {
		pos := countOccurrences(p, patterns.PositiveWords)
		neg := countOccurrences(p, patterns.NegativeWords)
		switch {
		case pos > neg:
			out = append(out, "warming")
		case neg > pos:
			out = append(out, "cooling")
		default:
			out = append(out, "steady")
		}
	}
	return out
}

func countOccurrences(s string, words []string) int {
	n := 0
	for _, w := range words {
		n += strings.Count(s, w)
	}
	return n
}
