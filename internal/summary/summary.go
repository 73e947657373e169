// Package summary composes the narrative fields of the analysis: templated
// sentences selected by ordered keyword rules, never generative text. Every
// list has a fallback set so output is always non-empty.
package summary

import (
	"fmt"
	"math"
	"strings"

	"call-insights-go/internal/types"
)

// topicRule fires when every cue appears in the lowered transcript.
type topicRule struct {
	cues  []string
	topic string
}

var topicRules = []topicRule{
	{[]string{"medicare", "subsidy"}, "Loan subsidy programs"},
	{[]string{"medicare", "advantage"}, "Medicare Advantage plans"},
	{[]string{"medicare"}, "Medicare eligibility and coverage"},
	{[]string{"premium"}, "Premium and payment amounts"},
	{[]string{"deductible"}, "Deductibles and out-of-pocket costs"},
	{[]string{"prescription"}, "Prescription drug coverage"},
	{[]string{"doctor"}, "Provider and network access"},
	{[]string{"enroll"}, "Enrollment options and timelines"},
	{[]string{"cancel"}, "Cancellation of existing coverage"},
	{[]string{"life insurance"}, "Life insurance products"},
}

var takeawayRules = []topicRule{
	{[]string{"not interested"}, "Customer declined the offer during this call"},
	{[]string{"sign me up"}, "Customer gave verbal agreement to proceed"},
	{[]string{"call me back"}, "Customer asked to be contacted again"},
	{[]string{"already have"}, "Customer reports existing coverage in place"},
	{[]string{"how much"}, "Pricing was a central concern for the customer"},
	{[]string{"supervisor"}, "Customer asked for escalation"},
}

var actionRules = []topicRule{
	{[]string{"call me back"}, "Schedule the requested follow-up call"},
	{[]string{"send", "email"}, "Send the discussed materials by email"},
	{[]string{"verify"}, "Complete outstanding verification steps"},
	{[]string{"supervisor"}, "Route the escalation to a supervisor"},
	{[]string{"enroll"}, "Confirm enrollment paperwork is submitted"},
}

var (
	fallbackTopics    = []string{"General insurance inquiry"}
	fallbackTakeaways = []string{"Call completed without a clear commitment either way"}
	fallbackActions   = []string{"Review the call and determine next contact step"}
	fallbackPoints    = []string{"No standout discussion points detected"}
)

// Summarize builds the narrative fields from the transcript, the attributed
// segments and the upstream stage results.
func Summarize(transcript string, segments []types.TranscriptSegment, sentiment types.SentimentResult, intent types.IntentResult, disp types.DispositionResult) types.NarrativeSummary {
	lower := strings.ToLower(transcript)

	topics := applyRules(lower, topicRules, fallbackTopics)
	takeaways := applyRules(lower, takeawayRules, fallbackTakeaways)
	actions := applyRules(lower, actionRules, fallbackActions)

	flow := buildFlow(segments)

	s := types.NarrativeSummary{
		Summary: fmt.Sprintf(
			"A %s conversation of %d exchanges with a %s primary intent. The call closed as %s.",
			sentiment.Overall, flow.TotalTurns, humanize(intent.Primary), humanize(disp.Disposition)),
		TopicsCovered:  topics,
		KeyTakeaways:   takeaways,
		CallConclusion: conclusionFor(disp),
		CallDetails: []string{
			fmt.Sprintf("Total conversational turns: %d", flow.TotalTurns),
			fmt.Sprintf("Speaker balance: %s", humanize(flow.BalanceLabel)),
			fmt.Sprintf("Overall sentiment: %s", sentiment.Overall),
		},
		KeyPoints:        keyPoints(topics, intent),
		ActionItems:      actions,
		ConversationFlow: flow,
	}
	return s
}

func applyRules(lower string, rules []topicRule, fallback []string) []string {
	out := []string{}
	for _, r := range rules {
		hit := true
		for _, cue := range r.cues {
			if cue == "" {
				continue
			}
			if !strings.Contains(lower, cue) {
				hit = false
				break
			}
		}
		if hit {
			out = append(out, r.topic)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func keyPoints(topics []string, intent types.IntentResult) []string {
	if len(topics) == 0 || topics[0] == fallbackTopics[0] {
		return fallbackPoints
	}
	points := make([]string, 0, len(topics)+1)
	points = append(points, fmt.Sprintf("Caller intent classified as %s", humanize(intent.Primary)))
	for _, t := range topics {
		points = append(points, "Discussed: "+t)
	}
	return points
}

func conclusionFor(disp types.DispositionResult) string {
	switch disp.Disposition {
	case "sale":
		return "The call ended with a completed sale."
	case "callback":
		return "The call ended with a follow-up contact arranged."
	case "not_interested":
		return "The call ended with the customer declining."
	case "service_resolved":
		return "The call ended with the customer's issue resolved."
	case "escalated":
		return "The call ended in an escalation."
	default:
		return "The call ended without a firm outcome."
	}
}

// buildFlow aggregates segment statistics. Agent and customer percentages
// always sum to exactly 100 for a non-empty segment list; the discrete
// balance label uses a 2:1 word-count threshold.
func buildFlow(segments []types.TranscriptSegment) types.ConversationFlow {
	flow := types.ConversationFlow{
		TotalTurns:     len(segments),
		BalanceLabel:   "balanced",
		SpeakerBalance: types.SpeakerBalance{AgentPercentage: 50, CustomerPercentage: 50},
		Events:         []string{},
	}
	if len(segments) == 0 {
		return flow
	}

	agentWords, customerWords := 0, 0
	seen := map[string]bool{}
	for _, s := range segments {
		n := len(strings.Fields(s.Content))
		if s.Speaker == types.SpeakerA {
			agentWords += n
		} else {
			customerWords += n
		}
		for _, e := range s.Events {
			if !seen[e] {
				seen[e] = true
				flow.Events = append(flow.Events, e)
			}
		}
	}

	total := agentWords + customerWords
	if total > 0 {
		agentPct := math.Round(float64(agentWords)/float64(total)*1000) / 10
		flow.SpeakerBalance = types.SpeakerBalance{
			AgentPercentage:    agentPct,
			CustomerPercentage: math.Round((100-agentPct)*10) / 10,
		}
		flow.AvgSegmentWords = math.Round(float64(total)/float64(len(segments))*10) / 10
	}

	switch {
	case agentWords > 0 && agentWords >= 2*customerWords:
		flow.BalanceLabel = "agent_dominated"
	case customerWords > 0 && customerWords >= 2*agentWords:
		flow.BalanceLabel = "customer_dominated"
	}

	return flow
}

func humanize(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}
