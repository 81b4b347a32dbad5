package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	GoogleAPIKey      string
	GeminiModel       string
	EstimationTimeout time.Duration
}

var App Config

// InitConfig loads .env and validates startup configuration. A missing
// GOOGLE_API_KEY is fatal; everything else has a sane default.
func InitConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		log.Fatalf("GOOGLE_API_KEY is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash-latest"
	}

	timeout := 15 * time.Second
	if s := os.Getenv("ESTIMATION_TIMEOUT_SECONDS"); s != "" {
		secs, err := strconv.Atoi(s)
		if err != nil || secs <= 0 {
			log.Fatalf("invalid ESTIMATION_TIMEOUT_SECONDS: %q", s)
		}
		timeout = time.Duration(secs) * time.Second
	}

	// Session state is in-memory, so tokens don't need to survive a restart.
	// A random per-process secret is fine when none is configured.
	if os.Getenv("SESSION_SECRET") == "" {
		os.Setenv("SESSION_SECRET", uuid.NewString())
	}

	App = Config{
		Port:              port,
		GoogleAPIKey:      key,
		GeminiModel:       model,
		EstimationTimeout: timeout,
	}
}
