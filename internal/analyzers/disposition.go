package analyzers

import (
	"strings"

	"call-insights-go/internal/patterns"
	"call-insights-go/internal/types"
)

// Disposition assigns the final call outcome from closing cues plus the
// upstream intent and business-conversion stages.
func Disposition(transcript string, intent types.IntentResult, conv types.BusinessConversionResult) (types.DispositionResult, error) {
	lower := strings.ToLower(transcript)

	switch {
	case conv.Outcome == "converted" || containsAny(lower, patterns.ClosingSaleCues):
		return types.DispositionResult{Disposition: "sale", Confidence: 90, Reason: "closing language present"}, nil

	case containsAny(lower, patterns.EscalationCues):
		return types.DispositionResult{Disposition: "escalated", Confidence: 80, Reason: "escalation requested"}, nil

	case conv.Outcome == "not_interested" || strings.Contains(lower, "not interested"):
		return types.DispositionResult{Disposition: "not_interested", Confidence: 75, Reason: "explicit decline"}, nil

	case containsAny(lower, patterns.CallbackCues):
		return types.DispositionResult{Disposition: "callback", Confidence: 70, Reason: "follow-up arranged"}, nil

	case intent.Primary == "support" && containsAny(lower, []string{"resolved", "fixed", "sorted", "all set"}):
		return types.DispositionResult{Disposition: "service_resolved", Confidence: 75, Reason: "support issue closed on the call"}, nil
	}

	return types.DispositionResult{Disposition: "no_decision", Confidence: 40, Reason: "no clear outcome signals"}, nil
}
