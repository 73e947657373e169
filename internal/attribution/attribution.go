// Package attribution reconstructs a two-party conversation from an
// undiarized transcript. Speaker labels come from lexical cues with an
// alternation fallback, so output is best-effort, never ground truth.
package attribution

import (
	"math"
	"strings"

	"call-insights-go/internal/patterns"
	"call-insights-go/internal/types"
)

// wordsPerMinute drives the synthetic timestamps. They are estimates from
// clause length, never real audio alignment.
const wordsPerMinute = 150.0

// Attribute splits the transcript into clauses on sentence-terminal
// punctuation and labels each with a speaker and any call-flow events.
func Attribute(transcript string) []types.TranscriptSegment {
	clauses := splitClauses(transcript)
	if len(clauses) == 0 {
		return []types.TranscriptSegment{}
	}

	segments := make([]types.TranscriptSegment, 0, len(clauses))
	speaker := types.SpeakerA
	introOpen := false
	cursor := 0.0

	for i, clause := range clauses {
		lower := strings.ToLower(clause)

		switch {
		case containsAny(lower, patterns.AgentCues):
			speaker = types.SpeakerA
		case containsAny(lower, patterns.CustomerCues):
			speaker = types.SpeakerB
		case i > 0:
			// No lexical signal: alternate to keep the two-party illusion.
			if speaker == types.SpeakerA {
				speaker = types.SpeakerB
			} else {
				speaker = types.SpeakerA
			}
		}

		var events []string
		if i == 0 && speaker == types.SpeakerA {
			events = append(events, types.EventDialogStart)
		}
		if containsAny(lower, patterns.IntroductionCues) {
			events = append(events, types.EventIntroductionStart)
			if i > 0 {
				events = append(events, types.EventPrimaryAgentStart)
			}
			introOpen = true
		} else if introOpen && speaker == types.SpeakerB && isAcknowledgement(lower) {
			events = append(events, types.EventIntroductionEnd)
			introOpen = false
		}
		if containsAny(lower, patterns.HoldCues) {
			events = append(events, types.EventHoldStart)
		}
		if containsAny(lower, patterns.TransferCues) {
			events = append(events, types.EventTransferStart)
		}
		if containsAny(lower, patterns.AutoAttendantCues) {
			events = append(events, types.EventAutoAttendantStart)
		}

		words := len(strings.Fields(clause))
		dur := float64(words) / wordsPerMinute * 60.0
		start := round1(cursor)
		cursor += dur

		segments = append(segments, types.TranscriptSegment{
			Speaker:  speaker,
			Content:  clause,
			StartSec: start,
			EndSec:   round1(cursor),
			Events:   events,
		})
	}

	// The last segment always carries the terminal marker.
	last := &segments[len(segments)-1]
	last.Events = append(last.Events, types.EventCallEnd)

	return segments
}

func splitClauses(transcript string) []string {
	raw := strings.FieldsFunc(transcript, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// isAcknowledgement treats a short clause led by an acknowledgement cue as a
// customer confirmation.
func isAcknowledgement(lower string) bool {
	if len(strings.Fields(lower)) > 6 {
		return false
	}
	for _, cue := range patterns.AcknowledgeCues {
		if strings.HasPrefix(lower, cue) {
			return true
		}
	}
	return false
}

func containsAny(s string, cues []string) bool {
	for _, c := range cues {
		if strings.Contains(s, c) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
