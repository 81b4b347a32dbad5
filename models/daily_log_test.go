package models

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meal(cal, prot, carbs, fat float64) MealEntry {
	return MealEntry{
		Type:        "Lunch",
		Description: "test meal",
		Calories:    cal,
		ProteinG:    prot,
		CarbsG:      carbs,
		FatG:        fat,
		LoggedAt:    time.Now(),
	}
}

func TestTotalsAreAFoldOverEntries(t *testing.T) {
	log := NewDailyLog(time.Now())

	require.NoError(t, log.AddMeal(meal(500, 30, 50, 15)))
	require.NoError(t, log.AddMeal(meal(250, 10, 20, 8)))
	require.NoError(t, log.AddWorkout(WorkoutEntry{Description: "run", CaloriesBurned: 200, LoggedAt: time.Now()}))
	require.NoError(t, log.AddHydration(HydrationEntry{AmountML: 500, LoggedAt: time.Now()}))
	require.NoError(t, log.AddHydration(HydrationEntry{AmountML: 250, LoggedAt: time.Now()}))

	got := log.Totals()
	assert.Equal(t, 750.0, got.CaloriesConsumed)
	assert.Equal(t, 40.0, got.ProteinG)
	assert.Equal(t, 70.0, got.CarbsG)
	assert.Equal(t, 23.0, got.FatG)
	assert.Equal(t, 200.0, got.CaloriesBurned)
	assert.Equal(t, 750.0, got.HydrationML)
}

func TestTotalsOrderIndependent(t *testing.T) {
	calories := []float64{100, 230, 420, 55, 310}

	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 5; trial++ {
		shuffled := append([]float64(nil), calories...)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		log := NewDailyLog(time.Now())
		for _, c := range shuffled {
			require.NoError(t, log.AddMeal(meal(c, 0, 0, 0)))
		}
		assert.Equal(t, 1115.0, log.Totals().CaloriesConsumed)
	}
}

func TestResetClearsEverything(t *testing.T) {
	log := NewDailyLog(time.Now())
	require.NoError(t, log.AddMeal(meal(500, 30, 50, 15)))
	require.NoError(t, log.AddWorkout(WorkoutEntry{Description: "swim", CaloriesBurned: 300, LoggedAt: time.Now()}))
	require.NoError(t, log.AddHydration(HydrationEntry{AmountML: 330, LoggedAt: time.Now()}))

	log.Reset()

	assert.Empty(t, log.Meals)
	assert.Empty(t, log.Workouts)
	assert.Empty(t, log.Hydration)
	assert.Equal(t, Totals{}, log.Totals())
}

func TestBadNumbersRejectedWithoutMutation(t *testing.T) {
	log := NewDailyLog(time.Now())

	bad := []MealEntry{
		meal(-1, 0, 0, 0),
		meal(100, -5, 0, 0),
		meal(100, 0, math.NaN(), 0),
		meal(100, 0, 0, math.Inf(1)),
	}
	for _, e := range bad {
		err := log.AddMeal(e)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	}

	assert.ErrorAs(t, log.AddWorkout(WorkoutEntry{Description: "run", CaloriesBurned: -10}), new(*ValidationError))
	assert.ErrorAs(t, log.AddWorkout(WorkoutEntry{Description: "run", CaloriesBurned: math.Inf(-1)}), new(*ValidationError))
	assert.ErrorAs(t, log.AddHydration(HydrationEntry{AmountML: -200}), new(*ValidationError))
	assert.ErrorAs(t, log.AddHydration(HydrationEntry{AmountML: math.NaN()}), new(*ValidationError))

	assert.Empty(t, log.Meals)
	assert.Empty(t, log.Workouts)
	assert.Empty(t, log.Hydration)
	assert.Equal(t, Totals{}, log.Totals())
}

func TestMealTypeClosedSet(t *testing.T) {
	log := NewDailyLog(time.Now())

	e := meal(100, 0, 0, 0)
	e.Type = "Midnight Feast"
	assert.ErrorAs(t, log.AddMeal(e), new(*ValidationError))

	for _, mt := range MealTypes {
		e := meal(100, 0, 0, 0)
		e.Type = mt
		assert.NoError(t, log.AddMeal(e))
	}
}

func TestHydrationZeroRejected(t *testing.T) {
	log := NewDailyLog(time.Now())
	assert.ErrorAs(t, log.AddHydration(HydrationEntry{AmountML: 0}), new(*ValidationError))
}
