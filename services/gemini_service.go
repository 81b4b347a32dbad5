package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"backend/config"
	"backend/models"
)

// MealEstimate is the structured answer for a free-text meal description.
type MealEstimate struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fats_g"`
}

// WorkoutEstimate is the structured answer for a free-text workout.
type WorkoutEstimate struct {
	CaloriesBurned float64 `json:"calories_burned"`
}

// Estimator is the narrow boundary to the external reasoning service.
// Swappable in tests; nothing else in the app knows how estimates are made.
type Estimator interface {
	EstimateMeal(ctx context.Context, description string) (*MealEstimate, error)
	EstimateWorkout(ctx context.Context, description string, profile models.Profile) (*WorkoutEstimate, error)
}

// TextGenerator produces free-form model output (coach advice).
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	mealPrompt = "You are a nutrition analysis expert. Analyze the following meal description and provide a reasonable estimate for its nutritional content. " +
		"Your response MUST be ONLY a JSON object with the keys 'calories', 'protein_g', 'carbs_g', and 'fats_g'.\n\n" +
		"Meal: %s\n\nJSON Output:"

	workoutPrompt = "You are a fitness expert. Analyze the following workout description and the user's profile to provide a reasonable estimate for calories burned. " +
		"The user's profile is: %s. " +
		"Your response MUST be ONLY a JSON object with the key 'calories_burned'.\n\n" +
		"Workout: %s\n\nJSON Output:"
)

// GeminiService talks to the Google generative language REST API.
type GeminiService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		apiKey:  config.App.GoogleAPIKey,
		model:   config.App.GeminiModel,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{Timeout: config.App.EstimationTimeout},
	}
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends one prompt and returns the raw model text.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate payload: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", u, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call generative language API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative language API error %d: %s", resp.StatusCode, string(body))
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse generate JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty model response")
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// The model is told to answer with bare JSON but often wraps it in prose or
// code fences, so take the widest {...} span.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

func extractJSON(text string) (string, error) {
	m := jsonObjectRe.FindString(text)
	if m == "" {
		return "", fmt.Errorf("no JSON object in model output: %q", text)
	}
	return m, nil
}

func (s *GeminiService) EstimateMeal(ctx context.Context, description string) (*MealEstimate, error) {
	text, err := s.Generate(ctx, fmt.Sprintf(mealPrompt, description))
	if err != nil {
		return nil, &models.EstimationError{Kind: "meal", Err: err}
	}

	raw, err := extractJSON(text)
	if err != nil {
		return nil, &models.EstimationError{Kind: "meal", Err: err}
	}

	var est MealEstimate
	if err := json.Unmarshal([]byte(raw), &est); err != nil {
		return nil, &models.EstimationError{Kind: "meal", Err: fmt.Errorf("unparseable nutrition JSON: %w", err)}
	}
	return &est, nil
}

func (s *GeminiService) EstimateWorkout(ctx context.Context, description string, profile models.Profile) (*WorkoutEstimate, error) {
	summary := fmt.Sprintf("Weight: %.0fkg, Age: %d, Gender: %s",
		profile.WeightKg, profile.Age, profile.Gender)

	text, err := s.Generate(ctx, fmt.Sprintf(workoutPrompt, summary, description))
	if err != nil {
		return nil, &models.EstimationError{Kind: "workout", Err: err}
	}

	raw, err := extractJSON(text)
	if err != nil {
		return nil, &models.EstimationError{Kind: "workout", Err: err}
	}

	var est WorkoutEstimate
	if err := json.Unmarshal([]byte(raw), &est); err != nil {
		return nil, &models.EstimationError{Kind: "workout", Err: fmt.Errorf("unparseable burn JSON: %w", err)}
	}
	return &est, nil
}
