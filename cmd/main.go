package main

import (
	"context"
	"time"

	"backend/config"
	"backend/metrics"
	"backend/routes"
	"backend/services"
)

func main() {
	config.InitConfig()
	metrics.Register()

	store := services.NewSessionStore()
	store.StartJanitor(context.Background(), 10*time.Minute)

	gemini := services.NewGeminiService()
	hub := services.NewRealtimeHub()
	logs := services.NewLogService(gemini, hub)
	coach := services.NewCoachService(gemini)

	r := routes.SetupRouter(store, hub, logs, coach)
	r.Run(":" + config.App.Port)
}
