package models

import "math"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityVery      = "very"
)

const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// DefaultHydrationGoalML is used when the profile doesn't set its own goal.
const DefaultHydrationGoalML = 2000.0

// Profile holds the body metrics the goal math runs on. One per session,
// never shared across sessions, mutated only through the profile endpoint.
type Profile struct {
	Age             int     `json:"age"`
	Gender          string  `json:"gender"`
	WeightKg        float64 `json:"weight_kg"`
	HeightCm        float64 `json:"height_cm"`
	ActivityLevel   string  `json:"activity_level"`
	Goal            string  `json:"goal"`
	HydrationGoalML float64 `json:"hydration_goal_ml"`
}

// Complete reports whether everything the BMR formula needs is present.
func (p Profile) Complete() bool {
	return p.Age > 0 && p.WeightKg > 0 && p.HeightCm > 0 &&
		(p.Gender == GenderMale || p.Gender == GenderFemale)
}

// HydrationGoal returns the configured goal in ml, falling back to the
// default when unset.
func (p Profile) HydrationGoal() float64 {
	if p.HydrationGoalML > 0 {
		return p.HydrationGoalML
	}
	return DefaultHydrationGoalML
}

func (p Profile) Validate() error {
	if p.Age <= 0 || p.Age > 120 {
		return &ValidationError{Field: "age", Reason: "must be between 1 and 120"}
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		return &ValidationError{Field: "gender", Reason: "must be 'male' or 'female'"}
	}
	if err := checkNumber("weight_kg", p.WeightKg); err != nil {
		return err
	}
	if err := checkNumber("height_cm", p.HeightCm); err != nil {
		return err
	}
	if p.WeightKg < 10 || p.WeightKg > 400 {
		return &ValidationError{Field: "weight_kg", Reason: "out of plausible range"}
	}
	if p.HeightCm < 50 || p.HeightCm > 250 {
		return &ValidationError{Field: "height_cm", Reason: "out of plausible range"}
	}
	switch p.ActivityLevel {
	case "", ActivitySedentary, ActivityLight, ActivityModerate, ActivityVery:
	default:
		return &ValidationError{Field: "activity_level", Reason: "unknown level"}
	}
	switch p.Goal {
	case "", GoalLose, GoalMaintain, GoalGain:
	default:
		return &ValidationError{Field: "goal", Reason: "must be 'lose', 'maintain' or 'gain'"}
	}
	if err := checkNumber("hydration_goal_ml", p.HydrationGoalML); err != nil {
		return err
	}
	return nil
}

// checkNumber rejects negative and non-finite values; shared by entry and
// profile validation.
func checkNumber(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}
