package services

import (
	"time"

	"backend/models"
	"backend/utils"
)

type MacroProgress struct {
	Consumed  float64 `json:"consumed"`
	Target    float64 `json:"target"`
	Remaining float64 `json:"remaining"`
	Percent   float64 `json:"percent"` // capped at 1 for progress bars
}

type HydrationView struct {
	ConsumedML float64 `json:"consumed_ml"`
	GoalML     float64 `json:"goal_ml"`
	Ratio      float64 `json:"ratio"`   // uncapped; >1 means goal exceeded
	Percent    float64 `json:"percent"` // capped at 1 for progress bars
}

type BMIView struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// DashboardSnapshot is the full daily summary the UI renders, and the
// payload pushed over the websocket after every successful log.
type DashboardSnapshot struct {
	Date              string                   `json:"date"`
	Totals            models.Totals            `json:"totals"`
	CalorieTarget     float64                  `json:"calorie_target"`
	AdjustedTarget    float64                  `json:"adjusted_target"` // target + burned
	RemainingCalories float64                  `json:"remaining_calories"`
	CaloriePercent    float64                  `json:"calorie_percent"` // consumed/adjusted, capped at 1
	Macros            map[string]MacroProgress `json:"macros"`
	Hydration         HydrationView            `json:"hydration"`
	BMI               *BMIView                 `json:"bmi,omitempty"`
}

func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}

// BuildDashboard assembles the snapshot for one session's day. Fails with
// ErrIncompleteProfile before any goal math runs on a half-filled profile.
func BuildDashboard(p models.Profile, t models.Totals, date time.Time) (*DashboardSnapshot, error) {
	target, err := CalorieTarget(p)
	if err != nil {
		return nil, err
	}
	macroTargets, err := MacroTargetsFor(p)
	if err != nil {
		return nil, err
	}

	adjusted := target + t.CaloriesBurned
	snap := &DashboardSnapshot{
		Date:              date.Format("2006-01-02"),
		Totals:            t,
		CalorieTarget:     target,
		AdjustedTarget:    adjusted,
		RemainingCalories: adjusted - t.CaloriesConsumed,
		CaloriePercent:    pct(t.CaloriesConsumed, adjusted),
		Macros: map[string]MacroProgress{
			"protein": {
				Consumed:  t.ProteinG,
				Target:    macroTargets.ProteinG,
				Remaining: macroTargets.ProteinG - t.ProteinG,
				Percent:   pct(t.ProteinG, macroTargets.ProteinG),
			},
			"carbs": {
				Consumed:  t.CarbsG,
				Target:    macroTargets.CarbsG,
				Remaining: macroTargets.CarbsG - t.CarbsG,
				Percent:   pct(t.CarbsG, macroTargets.CarbsG),
			},
			"fat": {
				Consumed:  t.FatG,
				Target:    macroTargets.FatG,
				Remaining: macroTargets.FatG - t.FatG,
				Percent:   pct(t.FatG, macroTargets.FatG),
			},
		},
		Hydration: HydrationView{
			ConsumedML: t.HydrationML,
			GoalML:     p.HydrationGoal(),
			Ratio:      HydrationProgress(p, t),
			Percent:    pct(t.HydrationML, p.HydrationGoal()),
		},
	}

	if bmi, err := utils.BMI(p); err == nil {
		snap.BMI = &BMIView{Value: bmi, Category: utils.BMICategory(bmi)}
	}

	return snap, nil
}
