package analyzers

import (
	"math"
	"strings"

	"call-insights-go/internal/types"
)

// CallMetrics computes word counts, talk-time split and conversational
// texture from the transcript and attributed segments. Duration comes from
// the provider payload when present, otherwise from a 150 wpm estimate.
func CallMetrics(transcript string, segments []types.TranscriptSegment, meta types.ProviderMeta) (types.CallMetricsResult, error) {
	total := len(strings.Fields(transcript))

	agentWords, customerWords := 0, 0
	interruptions := 0
	for i, s := range segments {
		n := len(strings.Fields(s.Content))
		if s.Speaker == types.SpeakerA {
			agentWords += n
		} else {
			customerWords += n
		}
		// A very short turn that breaks the previous speaker reads as an
		// interruption.
		if i > 0 && n <= 2 && s.Speaker != segments[i-1].Speaker {
			interruptions++
		}
	}

	duration := meta.DurationSec
	if duration <= 0 {
		duration = math.Round(float64(total) / 150.0 * 60.0)
	}

	ratio := 0.5
	if agentWords+customerWords > 0 {
		ratio = math.Round(float64(agentWords)/float64(agentWords+customerWords)*100) / 100
	}

	return types.CallMetricsResult{
		TotalWords:           total,
		AgentWords:           agentWords,
		CustomerWords:        customerWords,
		QuestionCount:        strings.Count(transcript, "?"),
		InterruptionCount:    interruptions,
		EstimatedDurationSec: duration,
		AgentTalkRatio:       ratio,
	}, nil
}
