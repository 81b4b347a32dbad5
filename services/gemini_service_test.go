package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeGemini(t *testing.T, handler http.HandlerFunc) *GeminiService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &GeminiService{
		apiKey:  "test-key",
		model:   "gemini-1.5-flash-latest",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func modelReply(text string) []byte {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return b
}

func TestEstimateMealParsesFencedJSON(t *testing.T) {
	svc := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply("Sure! ```json\n{\"calories\": 520, \"protein_g\": 22, \"carbs_g\": 61, \"fats_g\": 18}\n```"))
	})

	est, err := svc.EstimateMeal(context.Background(), "a bowl of oatmeal with berries")
	require.NoError(t, err)
	assert.Equal(t, 520.0, est.Calories)
	assert.Equal(t, 22.0, est.ProteinG)
	assert.Equal(t, 61.0, est.CarbsG)
	assert.Equal(t, 18.0, est.FatG)
}

func TestEstimateWorkoutIncludesProfileInPrompt(t *testing.T) {
	var gotPrompt string
	svc := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Contents[0].Parts[0].Text
		w.Write(modelReply("{\"calories_burned\": 240}"))
	})

	p := models.Profile{Age: 30, Gender: models.GenderMale, WeightKg: 70, HeightCm: 170}
	est, err := svc.EstimateWorkout(context.Background(), "30 minutes of jogging", p)
	require.NoError(t, err)
	assert.Equal(t, 240.0, est.CaloriesBurned)
	assert.Contains(t, gotPrompt, "Weight: 70kg")
	assert.Contains(t, gotPrompt, "30 minutes of jogging")
}

func TestEstimateMealNoJSONIsEstimationError(t *testing.T) {
	svc := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply("I can't help with that."))
	})

	_, err := svc.EstimateMeal(context.Background(), "mystery stew")
	var ee *models.EstimationError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "meal", ee.Kind)
}

func TestEstimateMealGarbageJSONIsEstimationError(t *testing.T) {
	svc := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply("{\"calories\": \"lots\"}"))
	})

	_, err := svc.EstimateMeal(context.Background(), "pizza")
	assert.ErrorAs(t, err, new(*models.EstimationError))
}

func TestEstimateMealRateLimitIsEstimationError(t *testing.T) {
	svc := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := svc.EstimateMeal(context.Background(), "toast")
	assert.ErrorAs(t, err, new(*models.EstimationError))
}

func TestEstimateMealTimeoutIsEstimationError(t *testing.T) {
	svc := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write(modelReply("{\"calories\": 100}"))
	})
	svc.client.Timeout = 20 * time.Millisecond

	_, err := svc.EstimateMeal(context.Background(), "slow soup")
	assert.ErrorAs(t, err, new(*models.EstimationError))
}

func TestExtractJSONTakesWidestSpan(t *testing.T) {
	raw, err := extractJSON("prefix {\"a\": {\"b\": 1}} suffix")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\": {\"b\": 1}}", raw)
}
