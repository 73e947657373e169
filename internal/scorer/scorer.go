// Package scorer computes the bounded heuristic category scores from
// phrase-presence counts, plus the overall score and three-tier rating.
package scorer

import (
	"math"
	"strings"

	"call-insights-go/internal/patterns"
	"call-insights-go/internal/types"
)

const (
	baseScore   = 5.0
	phraseBonus = 0.5
	minScore    = 1.0
	maxScore    = 10.0
)

type Result struct {
	Categories   types.CategoryScores `json:"categories"`
	OverallScore float64              `json:"overall_score"`
	Rating       types.Rating         `json:"rating"`
}

// Score starts every category at 5.0 and adds 0.5 for each distinct phrase
// from that category's list found in the lowered transcript, clamped to
// [1,10]. The overall score is the mean of the four categories rounded to
// one decimal.
func Score(transcript string) Result {
	lower := strings.ToLower(transcript)

	cats := types.CategoryScores{
		CommunicationSkills: categoryScore(lower, patterns.CommunicationPhrases),
		ProblemSolving:      categoryScore(lower, patterns.ProblemSolvingPhrases),
		ProductKnowledge:    categoryScore(lower, patterns.ProductKnowledgePhrases),
		CustomerService:     categoryScore(lower, patterns.CustomerServicePhrases),
	}

	overall := (cats.CommunicationSkills + cats.ProblemSolving + cats.ProductKnowledge + cats.CustomerService) / 4
	overall = math.Round(clamp(overall)*10) / 10

	return Result{
		Categories:   cats,
		OverallScore: overall,
		Rating:       RatingFor(overall),
	}
}

// RatingFor maps an overall score onto the three-tier rating. Boundaries are
// fixed: 7.5 is the lowest GOOD, 5.1 the lowest BAD, everything below is UGLY.
func RatingFor(overall float64) types.Rating {
	switch {
	case overall > 7.4:
		return types.RatingGood
	case overall >= 5.1:
		return types.RatingBad
	default:
		return types.RatingUgly
	}
}

func categoryScore(lower string, phrases []string) float64 {
	score := baseScore
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			score += phraseBonus
		}
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < minScore {
		return minScore
	}
	if v > maxScore {
		return maxScore
	}
	return v
}
