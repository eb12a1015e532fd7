package models

// EstimateInput is the form submission for one estimate. Weight is in pounds
// and feeds the BMR formula as-is (the calculator never converts to
// kilograms); height is collected for the profile but does not enter the
// calculation. The binding tags are the validation layer — handlers reject
// missing or out-of-domain values before the estimator ever runs.
type EstimateInput struct {
	Weight        float64 `json:"weight" binding:"required,gt=0"`
	HeightFeet    int     `json:"heightFeet" binding:"gte=0"`
	HeightInches  float64 `json:"heightInches" binding:"gte=0,lt=12"`
	Age           int     `json:"age" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required,oneof=male female"`
	// ActivityLevel must be one of the five published multipliers; oneof
	// only handles string and integer kinds, so membership is checked in
	// the handler against services.ActivityLevels instead of a tag.
	ActivityLevel float64 `json:"activityLevel" binding:"required,gt=0"`
	Goal          string  `json:"goal" binding:"required,oneof=maintain lose-0.5 lose-1 lose-2 gain-0.5 gain-1 gain-2"`
}

// EstimateResult is the raw estimator output: goal-adjusted kcal/day plus
// grams/day per macronutrient. Values are unrounded — rounding for display
// is a presentation concern.
type EstimateResult struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
