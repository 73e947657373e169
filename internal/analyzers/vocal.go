package analyzers

import (
	"math"
	"strings"

	"call-insights-go/internal/patterns"
	"call-insights-go/internal/types"
)

// VocalAnalytics derives text-proxy vocal metrics: filler-word density,
// politeness markers and an energy label from exclamation use. With no audio
// features available these are lexical approximations only.
func VocalAnalytics(transcript string) (types.VocalAnalyticsResult, error) {
	lower := strings.ToLower(transcript)
	words := len(strings.Fields(transcript))

	fillers := countOccurrences(lower, patterns.FillerWords)
	rate := 0.0
	if words > 0 {
		rate = math.Round(float64(fillers)/float64(words)*100*10) / 10
	}

	exclaims := strings.Count(transcript, "!")
	energy := "moderate"
	switch {
	case exclaims >= 3:
		energy = "high"
	case words > 0 && words < 40 && exclaims == 0:
		energy = "low"
	}

	return types.VocalAnalyticsResult{
		FillerWordRate:    rate,
		PolitenessMarkers: countOccurrences(lower, patterns.PolitenessWords),
		Exclamations:      exclaims,
		EnergyLevel:       energy,
	}, nil
}
