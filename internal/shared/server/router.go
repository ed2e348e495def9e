package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"restaurant-backend/internal/llm"
	llmopenai "restaurant-backend/internal/llm/openai"
	"restaurant-backend/internal/places"
	"restaurant-backend/internal/profiles"
	"restaurant-backend/internal/services/health"
	"restaurant-backend/internal/shared/config"
	"restaurant-backend/internal/shared/server/middleware"
	"restaurant-backend/internal/shared/server/respond"
	"restaurant-backend/internal/suggestions"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigin,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization", "X-Request-Id"},
			ExposeHeaders:    []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	// Dependencies
	placesClient := places.NewClient(cfg.FoursquareAPIKey, cfg.PlacesBaseURL)

	var model llm.Client = llm.PlaceholderClient{}
	if cfg.OpenAIAPIKey != "" {
		client, err := llmopenai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMBaseURL)
		if err != nil {
			log.Printf("model client unavailable, using rule-based ranking: %v", err)
		} else {
			model = client
		}
	} else {
		log.Printf("OPENAI_API_KEY not set, using rule-based ranking")
	}

	suggestionSvc := suggestions.NewService(profiles.NewMockProvider(), placesClient, model)
	suggestionHandler := suggestions.NewHandler(suggestionSvc)
	healthSvc := health.NewService()

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})

	api := r.Group("/api")
	api.Use(middleware.Auth())
	suggestionHandler.RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		respond.JSON(c, http.StatusNotFound, respond.ErrorBody{Message: "Endpoint not found"})
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
