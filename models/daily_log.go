package models

import "time"

// Totals is the fold over one day's entries. It is recomputed on every read
// so it can never drift from the entry slices.
type Totals struct {
	CaloriesConsumed float64 `json:"calories_consumed"`
	ProteinG         float64 `json:"protein_g"`
	CarbsG           float64 `json:"carbs_g"`
	FatG             float64 `json:"fat_g"`
	CaloriesBurned   float64 `json:"calories_burned"`
	HydrationML      float64 `json:"hydration_ml"`
}

// DailyLog owns the ordered entries for one calendar day. Append-only:
// entries are validated before the append and never mutated afterwards.
// It is not synchronized itself; the owning Session serializes access.
type DailyLog struct {
	Date      time.Time        `json:"date"`
	Meals     []MealEntry      `json:"meals"`
	Workouts  []WorkoutEntry   `json:"workouts"`
	Hydration []HydrationEntry `json:"hydration"`
}

func NewDailyLog(now time.Time) *DailyLog {
	loc := now.Location()
	return &DailyLog{
		Date: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc),
	}
}

func (l *DailyLog) AddMeal(e MealEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	l.Meals = append(l.Meals, e)
	return nil
}

func (l *DailyLog) AddWorkout(e WorkoutEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	l.Workouts = append(l.Workouts, e)
	return nil
}

func (l *DailyLog) AddHydration(e HydrationEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	l.Hydration = append(l.Hydration, e)
	return nil
}

// Totals sums the entry slices. Pure function of current state.
func (l *DailyLog) Totals() Totals {
	var t Totals
	for _, m := range l.Meals {
		t.CaloriesConsumed += m.Calories
		t.ProteinG += m.ProteinG
		t.CarbsG += m.CarbsG
		t.FatG += m.FatG
	}
	for _, w := range l.Workouts {
		t.CaloriesBurned += w.CaloriesBurned
	}
	for _, h := range l.Hydration {
		t.HydrationML += h.AmountML
	}
	return t
}

// Reset clears all entries (day rollover). Irreversible.
func (l *DailyLog) Reset() {
	l.Meals = nil
	l.Workouts = nil
	l.Hydration = nil
}
