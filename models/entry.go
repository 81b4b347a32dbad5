package models

import "time"

// MealTypes are the fixed slots a meal can be logged under.
var MealTypes = []string{
	"Breakfast", "Breakfast Snack", "Lunch", "Evening Snack", "Dinner", "Dessert",
}

func IsMealType(t string) bool {
	for _, mt := range MealTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// MealEntry stores the nutrition snapshot the estimator returned for one
// free-text meal description. Immutable once appended.
type MealEntry struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Calories    float64   `json:"calories"`
	ProteinG    float64   `json:"protein_g"`
	CarbsG      float64   `json:"carbs_g"`
	FatG        float64   `json:"fat_g"`
	LoggedAt    time.Time `json:"logged_at"`
}

func (e MealEntry) Validate() error {
	if !IsMealType(e.Type) {
		return &ValidationError{Field: "type", Reason: "unknown meal type"}
	}
	if e.Description == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	for field, v := range map[string]float64{
		"calories":  e.Calories,
		"protein_g": e.ProteinG,
		"carbs_g":   e.CarbsG,
		"fat_g":     e.FatG,
	} {
		if err := checkNumber(field, v); err != nil {
			return err
		}
	}
	return nil
}

// WorkoutEntry is one free-text workout with the estimator's burn figure.
type WorkoutEntry struct {
	Description    string    `json:"description"`
	CaloriesBurned float64   `json:"calories_burned"`
	LoggedAt       time.Time `json:"logged_at"`
}

func (e WorkoutEntry) Validate() error {
	if e.Description == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	return checkNumber("calories_burned", e.CaloriesBurned)
}

// HydrationEntry is one glass/bottle logged directly, no estimation involved.
type HydrationEntry struct {
	AmountML float64   `json:"amount_ml"`
	LoggedAt time.Time `json:"logged_at"`
}

func (e HydrationEntry) Validate() error {
	if err := checkNumber("amount_ml", e.AmountML); err != nil {
		return err
	}
	if e.AmountML == 0 {
		return &ValidationError{Field: "amount_ml", Reason: "must be greater than zero"}
	}
	return nil
}
