package analyzers

import (
	"sort"
	"strings"

	"call-insights-go/internal/patterns"
	"call-insights-go/internal/types"
)

// Intent classifies the caller's primary intent from fixed per-intent cue
// vocabularies. The label with the most cue hits wins; ties break
// alphabetically so the result is deterministic.
func Intent(transcript string) (types.IntentResult, error) {
	lower := strings.ToLower(transcript)

	type hit struct {
		label string
		count int
	}
	var hits []hit
	for label, cues := range patterns.IntentVocabulary {
		n := countOccurrences(lower, cues)
		if n > 0 {
			hits = append(hits, hit{label, n})
		}
	}

	if len(hits) == 0 {
		return types.IntentResult{Primary: "general_inquiry", Confidence: 40, Secondary: []string{}}, nil
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].count != hits[j].count {
			return hits[i].count > hits[j].count
		}
		return hits[i].label < hits[j].label
	})

	conf := 40 + float64(hits[0].count)*15
	if conf > 95 {
		conf = 95
	}
	secondary := []string{}
	for _, h := range hits[1:] {
		secondary = append(secondary, h.label)
	}

	return types.IntentResult{
		Primary:    hits[0].label,
		Confidence: conf,
		Secondary:  secondary,
	}, nil
}
