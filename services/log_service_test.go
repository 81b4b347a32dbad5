package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEstimator struct {
	meal    *MealEstimate
	workout *WorkoutEstimate
	err     error
}

func (f *fakeEstimator) EstimateMeal(ctx context.Context, description string) (*MealEstimate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.meal, nil
}

func (f *fakeEstimator) EstimateWorkout(ctx context.Context, description string, profile models.Profile) (*WorkoutEstimate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.workout, nil
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	sess := NewSessionStore().Create(time.Now())
	sess.SetProfile(models.Profile{
		Age: 30, Gender: models.GenderMale, WeightKg: 70, HeightCm: 170,
		ActivityLevel: models.ActivityModerate, Goal: models.GoalMaintain,
	})
	return sess
}

func TestLogMealAppendsOnSuccess(t *testing.T) {
	sess := newTestSession(t)
	svc := NewLogService(&fakeEstimator{meal: &MealEstimate{Calories: 500, ProteinG: 20, CarbsG: 60, FatG: 15}}, nil)

	entry, err := svc.LogMeal(context.Background(), sess, "Lunch", "rice and chicken")
	require.NoError(t, err)
	assert.Equal(t, 500.0, entry.Calories)

	totals := sess.Totals()
	assert.Equal(t, 500.0, totals.CaloriesConsumed)
	assert.Equal(t, 20.0, totals.ProteinG)
}

func TestFailedEstimationLeavesLogUnchanged(t *testing.T) {
	sess := newTestSession(t)
	boom := &models.EstimationError{Kind: "meal", Err: errors.New("rate limited")}
	svc := NewLogService(&fakeEstimator{err: boom}, nil)

	_, err := svc.LogMeal(context.Background(), sess, "Dinner", "pasta")
	assert.ErrorAs(t, err, new(*models.EstimationError))

	_, err = svc.LogWorkout(context.Background(), sess, "cycling")
	assert.ErrorAs(t, err, new(*models.EstimationError))

	meals, workouts, hydration := sess.Entries()
	assert.Empty(t, meals)
	assert.Empty(t, workouts)
	assert.Empty(t, hydration)
	assert.Equal(t, models.Totals{}, sess.Totals())
}

func TestNegativeEstimateRejectedAtAppend(t *testing.T) {
	sess := newTestSession(t)
	svc := NewLogService(&fakeEstimator{meal: &MealEstimate{Calories: -100}}, nil)

	_, err := svc.LogMeal(context.Background(), sess, "Lunch", "antimatter salad")
	assert.ErrorAs(t, err, new(*models.ValidationError))

	meals, _, _ := sess.Entries()
	assert.Empty(t, meals)
}

func TestEstimationRequiresCompleteProfile(t *testing.T) {
	sess := NewSessionStore().Create(time.Now()) // profile never set
	svc := NewLogService(&fakeEstimator{meal: &MealEstimate{Calories: 100}, workout: &WorkoutEstimate{CaloriesBurned: 50}}, nil)

	_, err := svc.LogMeal(context.Background(), sess, "Lunch", "salad")
	assert.ErrorIs(t, err, models.ErrIncompleteProfile)

	_, err = svc.LogWorkout(context.Background(), sess, "jogging")
	assert.ErrorIs(t, err, models.ErrIncompleteProfile)
}

func TestLogHydrationSkipsEstimator(t *testing.T) {
	sess := newTestSession(t)
	// estimator that would fail if ever called
	svc := NewLogService(&fakeEstimator{err: errors.New("must not be called")}, nil)

	_, err := svc.LogHydration(sess, 500)
	require.NoError(t, err)
	_, err = svc.LogHydration(sess, 250)
	require.NoError(t, err)

	assert.Equal(t, 750.0, sess.Totals().HydrationML)
}

func TestLogWorkoutAdjustsRemaining(t *testing.T) {
	sess := newTestSession(t)
	svc := NewLogService(&fakeEstimator{
		meal:    &MealEstimate{Calories: 500},
		workout: &WorkoutEstimate{CaloriesBurned: 200},
	}, nil)

	_, err := svc.LogMeal(context.Background(), sess, "Lunch", "sandwich")
	require.NoError(t, err)
	_, err = svc.LogWorkout(context.Background(), sess, "jogging")
	require.NoError(t, err)

	remaining, err := RemainingCalories(sess.Profile(), sess.Totals())
	require.NoError(t, err)
	assert.InDelta(t, 2507.125-500+200, remaining, 1e-9)
}
