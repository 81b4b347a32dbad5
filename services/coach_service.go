package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backend/metrics"
	"backend/models"
)

// ErrNoMealsLogged: the coach has nothing to say about an empty day.
var ErrNoMealsLogged = errors.New("log at least one meal before asking for advice")

const coachPrompt = "You are an encouraging and helpful AI Diet Coach. Your goal is to provide actionable insights and suggestions based on the user's progress today. " +
	"Keep your tone positive and motivating.\n\n" +
	"Here is the user's data for today:\n" +
	"------------------------\n" +
	"User Profile: %s\n" +
	"Primary Goal: %s\n" +
	"Original Daily Calorie Target: %.0f kcal\n" +
	"Workouts Logged Today: %s\n" +
	"Calories Burned from Workouts: %.0f kcal\n" +
	"Adjusted Daily Calorie Target (Original + Burned): %.0f kcal\n" +
	"Meals Logged Today: %s\n" +
	"Total Consumption Today: %.0f kcal consumed\n" +
	"------------------------\n\n" +
	"Based on all the information above, please provide the following in a clear, structured Markdown format:\n" +
	"1. **Insight:** A brief, positive analysis of their progress. Mention their workout and compare their consumption to their *Adjusted Calorie Target*.\n" +
	"2. **Next Meal Suggestion:** Suggest a specific, healthy meal or snack suitable for their remaining calories.\n" +
	"3. **Recovery Tip:** A short tip related to their workout, like stretching or hydration."

// CoachService renders the daily summary into a prompt and returns the
// model's markdown advice.
type CoachService struct {
	gen TextGenerator
}

func NewCoachService(gen TextGenerator) *CoachService {
	return &CoachService{gen: gen}
}

func (s *CoachService) DailyAdvice(ctx context.Context, sess *Session) (string, error) {
	profile := sess.Profile()
	if !profile.Complete() {
		return "", models.ErrIncompleteProfile
	}

	meals, workouts, _ := sess.Entries()
	if len(meals) == 0 {
		return "", ErrNoMealsLogged
	}

	target, err := CalorieTarget(profile)
	if err != nil {
		return "", err
	}

	totals := sess.Totals()
	adjusted := target + totals.CaloriesBurned

	mealSummaries := make([]string, 0, len(meals))
	for _, m := range meals {
		mealSummaries = append(mealSummaries, fmt.Sprintf("%s: %s", m.Type, m.Description))
	}
	workoutSummaries := make([]string, 0, len(workouts))
	for _, w := range workouts {
		workoutSummaries = append(workoutSummaries, w.Description)
	}
	workoutLine := strings.Join(workoutSummaries, "; ")
	if workoutLine == "" {
		workoutLine = "None"
	}

	profileSummary := fmt.Sprintf("Age: %d, Gender: %s, Weight: %.0fkg",
		profile.Age, profile.Gender, profile.WeightKg)

	prompt := fmt.Sprintf(coachPrompt,
		profileSummary,
		profile.Goal,
		target,
		workoutLine,
		totals.CaloriesBurned,
		adjusted,
		strings.Join(mealSummaries, "; "),
		totals.CaloriesConsumed,
	)

	advice, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.IncEstimation("coach", "error")
		return "", &models.EstimationError{Kind: "coach", Err: err}
	}
	metrics.IncEstimation("coach", "ok")
	return advice, nil
}
