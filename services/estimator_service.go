package services

import (
	"github.com/alvinwquach/macronutrient-calculator/models"
)

// ActivityLevel pairs a conventional label with its TDEE multiplier.
type ActivityLevel struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// ActivityLevels lists the five supported multipliers, lightest first. This
// is the single source of truth for valid activityLevel values — the
// binding tags on EstimateInput and the reference endpoint both mirror it.
var ActivityLevels = []ActivityLevel{
	{Label: "sedentary", Multiplier: 1.2},
	{Label: "lightly active", Multiplier: 1.375},
	{Label: "moderately active", Multiplier: 1.55},
	{Label: "very active", Multiplier: 1.725},
	{Label: "extra active", Multiplier: 1.9},
}

// ValidActivityLevel reports whether m is one of the published multipliers.
// Used by the binding layer, since struct tags can't express a float enum.
func ValidActivityLevel(m float64) bool {
	for _, al := range ActivityLevels {
		if al.Multiplier == m {
			return true
		}
	}
	return false
}

// GoalOption pairs a weight-change goal tag with its calorie multiplier.
type GoalOption struct {
	Tag        string  `json:"tag"`
	Multiplier float64 `json:"multiplier"`
}

// GoalOptions lists the seven goals in display order. Tags encode the
// targeted weight change in pounds per week.
var GoalOptions = []GoalOption{
	{Tag: "maintain", Multiplier: 1.0},
	{Tag: "lose-0.5", Multiplier: 0.9},
	{Tag: "lose-1", Multiplier: 0.8},
	{Tag: "lose-2", Multiplier: 0.6},
	{Tag: "gain-0.5", Multiplier: 1.1},
	{Tag: "gain-1", Multiplier: 1.2},
	{Tag: "gain-2", Multiplier: 1.4},
}

// goalMultiplier resolves a goal tag to its calorie multiplier. An
// unrecognized tag falls back to maintain (1.0) instead of failing; the
// binding layer keeps unknown tags off the HTTP path, so the fallback is
// only reachable for direct callers of Estimate.
func goalMultiplier(goal string) float64 {
	switch goal {
	case "lose-0.5":
		return 0.9
	case "lose-1":
		return 0.8
	case "lose-2":
		return 0.6
	case "gain-0.5":
		return 1.1
	case "gain-1":
		return 1.2
	case "gain-2":
		return 1.4
	default:
		return 1.0
	}
}

// Estimate computes goal-adjusted daily calories and a 25/45/30
// protein/carb/fat split (at 4/4/9 kcal per gram) from the form input.
//
// The BMR step deviates from textbook Mifflin-St Jeor in two ways: the
// height term is dropped (height is accepted but never read), and weight
// enters in pounds rather than kilograms. A gender outside male/female
// leaves BMR at zero, which zeroes every output.
//
// Pure and total: no validation, no error surface, safe for concurrent use.
func Estimate(in models.EstimateInput) models.EstimateResult {
	var bmr float64
	switch in.Gender {
	case "male":
		bmr = 10*in.Weight + 6.25 - 5*float64(in.Age) + 5
	case "female":
		bmr = 10*in.Weight + 6.25 - 5*float64(in.Age) - 161
	}

	tdee := bmr * in.ActivityLevel
	calories := tdee * goalMultiplier(in.Goal)

	return models.EstimateResult{
		Calories: calories,
		Protein:  calories * 0.25 / 4,
		Carbs:    calories * 0.45 / 4,
		Fat:      calories * 0.30 / 9,
	}
}
