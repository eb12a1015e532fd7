package models

// FormState holds the currently selected value for each form field. Nil
// means "not chosen yet". Updates go through the With* methods, which return
// a replacement copy rather than mutating the receiver, so earlier states a
// caller kept around never shift underneath it.
type FormState struct {
	Weight        *float64
	HeightFeet    *int
	HeightInches  *float64
	Age           *int
	Gender        *string
	ActivityLevel *float64
	Goal          *string
}

func (f FormState) WithWeight(lbs float64) FormState {
	f.Weight = &lbs
	return f
}

func (f FormState) WithHeight(feet int, inches float64) FormState {
	f.HeightFeet = &feet
	f.HeightInches = &inches
	return f
}

func (f FormState) WithAge(years int) FormState {
	f.Age = &years
	return f
}

func (f FormState) WithGender(gender string) FormState {
	f.Gender = &gender
	return f
}

func (f FormState) WithActivityLevel(multiplier float64) FormState {
	f.ActivityLevel = &multiplier
	return f
}

func (f FormState) WithGoal(goal string) FormState {
	f.Goal = &goal
	return f
}

// Complete reports whether every field has a selection.
func (f FormState) Complete() bool {
	return f.Weight != nil && f.HeightFeet != nil && f.HeightInches != nil &&
		f.Age != nil && f.Gender != nil && f.ActivityLevel != nil && f.Goal != nil
}

// Input materializes the selections into an EstimateInput. ok is false until
// the form is complete.
func (f FormState) Input() (EstimateInput, bool) {
	if !f.Complete() {
		return EstimateInput{}, false
	}
	return EstimateInput{
		Weight:        *f.Weight,
		HeightFeet:    *f.HeightFeet,
		HeightInches:  *f.HeightInches,
		Age:           *f.Age,
		Gender:        *f.Gender,
		ActivityLevel: *f.ActivityLevel,
		Goal:          *f.Goal,
	}, true
}
