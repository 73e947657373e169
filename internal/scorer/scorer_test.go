package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"call-insights-go/internal/types"
)

func TestRatingBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  types.Rating
	}{
		{7.5, types.RatingGood},
		{7.4, types.RatingBad},
		{5.1, types.RatingBad},
		{5.0, types.RatingUgly},
		{10.0, types.RatingGood},
		{1.0, types.RatingUgly},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RatingFor(tt.score), "score %.1f", tt.score)
	}
}

func TestScoreProfessionalPhrases(t *testing.T) {
	res := Score("Thank you for calling, I understand your concern, let me help you. Certainly, I can resolve this.")

	assert.GreaterOrEqual(t, res.Categories.CommunicationSkills, 6.5)
	assert.GreaterOrEqual(t, res.Categories.ProblemSolving, 6.0)
}

func TestScoreNoRecognizablePhrases(t *testing.T) {
	res := Score("Zebra zebra zebra.")

	assert.Equal(t, 5.0, res.Categories.CommunicationSkills)
	assert.Equal(t, 5.0, res.Categories.ProblemSolving)
	assert.Equal(t, 5.0, res.Categories.ProductKnowledge)
	assert.Equal(t, 5.0, res.Categories.CustomerService)
	assert.Equal(t, 5.0, res.OverallScore)
	assert.Equal(t, types.RatingUgly, res.Rating)
}

func TestScoreBounds(t *testing.T) {
	transcripts := []string{
		"",
		"Zebra.",
		"Thank you please I understand certainly absolutely of course my pleasure appreciate great question to clarify coverage policy premium deductible benefits medicare enrollment plan options network copay",
		"no no no terrible cancel",
	}
	for _, tr := range transcripts {
		res := Score(tr)
		for _, v := range []float64{
			res.Categories.CommunicationSkills,
			res.Categories.ProblemSolving,
			res.Categories.ProductKnowledge,
			res.Categories.CustomerService,
			res.OverallScore,
		} {
			assert.GreaterOrEqual(t, v, 1.0)
			assert.LessOrEqual(t, v, 10.0)
		}
	}
}
