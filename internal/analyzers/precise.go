package analyzers

import (
	"math"

	"call-insights-go/internal/types"
)

// PreciseScoring blends the basic heuristic category scores with the
// business-conversion outcome into a 0-100 composite with a per-dimension
// breakdown. It depends on both upstream stages, so the pipeline runs it
// after them.
func PreciseScoring(cats types.CategoryScores, overall float64, conv types.BusinessConversionResult) (types.PreciseScoringResult, error) {
	dims := map[string]float64{
		"communication":     cats.CommunicationSkills * 10,
		"problem_solving":   cats.ProblemSolving * 10,
		"product_knowledge": cats.ProductKnowledge * 10,
		"customer_service":  cats.CustomerService * 10,
		"conversion":        math.Round(conv.Probability * 100),
	}

	// Heuristic score carries 80% of the weight, conversion the rest.
	score := overall*10*0.8 + conv.Probability*100*0.2
	score = math.Round(score*10) / 10
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return types.PreciseScoringResult{Overall: score, Dimensions: dims}, nil
}
