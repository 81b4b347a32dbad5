package services

import "backend/models"

// Calorie targets use the Mifflin-St Jeor equation:
//
//	male:   BMR = 10*weight + 6.25*height - 5*age + 5
//	female: BMR = 10*weight + 6.25*height - 5*age - 161
//
// TDEE = BMR * activity multiplier; the goal shifts the target by a flat
// 500 kcal either way. All deterministic, so the same profile always yields
// the same target.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityVery:      1.725,
}

const goalOffsetKcal = 500.0

// Macro targets split the calorie target 30% protein / 40% carbs / 30% fat,
// converted to grams at 4/4/9 kcal per gram.
const (
	proteinShare = 0.30
	carbsShare   = 0.40
	fatShare     = 0.30

	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0
)

type MacroTargets struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type MacroDelta struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

func BMR(p models.Profile) (float64, error) {
	if !p.Complete() {
		return 0, models.ErrIncompleteProfile
	}
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

func TDEE(p models.Profile) (float64, error) {
	bmr, err := BMR(p)
	if err != nil {
		return 0, err
	}
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = activityMultipliers[models.ActivitySedentary] // unset level reads as sedentary
	}
	return bmr * mult, nil
}

func CalorieTarget(p models.Profile) (float64, error) {
	tdee, err := TDEE(p)
	if err != nil {
		return 0, err
	}
	switch p.Goal {
	case models.GoalLose:
		return tdee - goalOffsetKcal, nil
	case models.GoalGain:
		return tdee + goalOffsetKcal, nil
	default:
		return tdee, nil
	}
}

func MacroTargetsFor(p models.Profile) (MacroTargets, error) {
	target, err := CalorieTarget(p)
	if err != nil {
		return MacroTargets{}, err
	}
	return MacroTargets{
		ProteinG: target * proteinShare / kcalPerGramProtein,
		CarbsG:   target * carbsShare / kcalPerGramCarbs,
		FatG:     target * fatShare / kcalPerGramFat,
	}, nil
}

// RemainingCalories = target - consumed + burned. Negative means over target,
// which is valid output, not an error.
func RemainingCalories(p models.Profile, t models.Totals) (float64, error) {
	target, err := CalorieTarget(p)
	if err != nil {
		return 0, err
	}
	return target - t.CaloriesConsumed + t.CaloriesBurned, nil
}

// MacroRemaining is per-macro target minus consumed; any value may go
// negative.
func MacroRemaining(p models.Profile, t models.Totals) (MacroDelta, error) {
	targets, err := MacroTargetsFor(p)
	if err != nil {
		return MacroDelta{}, err
	}
	return MacroDelta{
		ProteinG: targets.ProteinG - t.ProteinG,
		CarbsG:   targets.CarbsG - t.CarbsG,
		FatG:     targets.FatG - t.FatG,
	}, nil
}

// HydrationProgress returns consumed/goal uncapped; 1.3 means 130% of goal
// and is preserved. Needs no body metrics, only the hydration goal, which
// defaults when unset.
func HydrationProgress(p models.Profile, t models.Totals) float64 {
	return t.HydrationML / p.HydrationGoal()
}
