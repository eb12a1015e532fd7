package utils

import (
	"math"

	"github.com/alvinwquach/macronutrient-calculator/models"
)

// DisplayResult is an EstimateResult rounded to whole kcal and grams for
// rendering. Only the display path rounds; the raw floats stay untouched so
// downstream math never accumulates rounding error.
type DisplayResult struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// RoundForDisplay uses math.Round rather than int truncation, which would
// systematically under-report.
func RoundForDisplay(r models.EstimateResult) DisplayResult {
	return DisplayResult{
		Calories: int(math.Round(r.Calories)),
		Protein:  int(math.Round(r.Protein)),
		Carbs:    int(math.Round(r.Carbs)),
		Fat:      int(math.Round(r.Fat)),
	}
}
