package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration. It is built once at startup and
// passed by value into the components that need it; nothing outside this
// package reads the process environment.
type Config struct {
	Port             string
	Env              string
	CORSAllowOrigin  []string
	FoursquareAPIKey string
	PlacesBaseURL    string
	OpenAIAPIKey     string
	LLMModel         string
	LLMBaseURL       string
}

// Load reads configuration from environment variables with sensible defaults.
// FOURSQUARE_API_KEY is deliberately not validated here; a missing key
// surfaces as an upstream authentication failure on the first places call.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		FoursquareAPIKey: os.Getenv("FOURSQUARE_API_KEY"),
		PlacesBaseURL:    getEnv("PLACES_BASE_URL", "https://places-api.foursquare.com"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		LLMModel:         getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMBaseURL:       getEnv("LLM_BASE_URL", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
