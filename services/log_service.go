package services

import (
	"context"
	"time"

	"backend/metrics"
	"backend/models"
)

// LogService runs the estimate-then-append flow. The append is atomic on
// success only: a failed or unparseable estimation produces no entry.
type LogService struct {
	est Estimator
	hub *RealtimeHub
}

func NewLogService(est Estimator, hub *RealtimeHub) *LogService {
	return &LogService{est: est, hub: hub}
}

func (s *LogService) LogMeal(ctx context.Context, sess *Session, mealType, description string) (*models.MealEntry, error) {
	if !sess.Profile().Complete() {
		return nil, models.ErrIncompleteProfile
	}

	est, err := s.est.EstimateMeal(ctx, description)
	if err != nil {
		metrics.IncEstimation("meal", "error")
		return nil, err
	}
	metrics.IncEstimation("meal", "ok")

	entry := models.MealEntry{
		Type:        mealType,
		Description: description,
		Calories:    est.Calories,
		ProteinG:    est.ProteinG,
		CarbsG:      est.CarbsG,
		FatG:        est.FatG,
		LoggedAt:    time.Now(),
	}
	if err := sess.AddMeal(entry); err != nil {
		return nil, err
	}
	metrics.IncEntryLogged("meal")
	s.broadcast(sess)
	return &entry, nil
}

func (s *LogService) LogWorkout(ctx context.Context, sess *Session, description string) (*models.WorkoutEntry, error) {
	profile := sess.Profile()
	if !profile.Complete() {
		return nil, models.ErrIncompleteProfile
	}

	est, err := s.est.EstimateWorkout(ctx, description, profile)
	if err != nil {
		metrics.IncEstimation("workout", "error")
		return nil, err
	}
	metrics.IncEstimation("workout", "ok")

	entry := models.WorkoutEntry{
		Description:    description,
		CaloriesBurned: est.CaloriesBurned,
		LoggedAt:       time.Now(),
	}
	if err := sess.AddWorkout(entry); err != nil {
		return nil, err
	}
	metrics.IncEntryLogged("workout")
	s.broadcast(sess)
	return &entry, nil
}

// LogHydration never touches the estimator.
func (s *LogService) LogHydration(sess *Session, amountML float64) (*models.HydrationEntry, error) {
	entry := models.HydrationEntry{AmountML: amountML, LoggedAt: time.Now()}
	if err := sess.AddHydration(entry); err != nil {
		return nil, err
	}
	metrics.IncEntryLogged("hydration")
	s.broadcast(sess)
	return &entry, nil
}

func (s *LogService) broadcast(sess *Session) {
	if s.hub == nil {
		return
	}
	snap, err := BuildDashboard(sess.Profile(), sess.Totals(), sess.LogDate())
	if err != nil {
		return
	}
	s.hub.BroadcastSnapshot(sess.ID, snap)
}
