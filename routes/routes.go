package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(
	store *services.SessionStore,
	hub *services.RealtimeHub,
	logs *services.LogService,
	coach *services.CoachService,
) *gin.Engine {
	r := gin.Default()

	sessionCtl := controllers.NewSessionController(store)
	mealCtl := controllers.NewMealController(logs)
	workoutCtl := controllers.NewWorkoutController(logs)
	hydrationCtl := controllers.NewHydrationController(logs)
	coachCtl := controllers.NewCoachController(coach)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Opening a session is the only unauthenticated call.
	r.POST("/session", sessionCtl.Create)

	s := r.Group("/session")
	s.Use(middlewares.SessionMiddleware(store))
	{
		s.DELETE("", sessionCtl.Close)
		s.DELETE("/log", sessionCtl.ResetLog)

		s.GET("/profile", controllers.GetProfile)
		s.PUT("/profile", controllers.UpdateProfile)

		s.POST("/meals", mealCtl.LogMeal)
		s.GET("/meals", mealCtl.ListMeals)

		s.POST("/workouts", workoutCtl.LogWorkout)
		s.GET("/workouts", workoutCtl.ListWorkouts)

		s.POST("/hydration", hydrationCtl.LogHydration)

		s.GET("/dashboard", controllers.GetDashboard)
		s.POST("/coach", coachCtl.GetAdvice)

		s.GET("/ws", realtimeCtl.DashboardWS)
	}

	return r
}
