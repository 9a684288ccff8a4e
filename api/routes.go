package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/customeros/unsublink/api/handlers"
	"github.com/customeros/unsublink/api/middleware"
	"github.com/customeros/unsublink/internal/repository"
	"github.com/customeros/unsublink/internal/tracing"
	"github.com/customeros/unsublink/services"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, s *services.Services, repos *repository.Repositories, apikey string) {
	if s == nil {
		panic("Services cannot be nil")
	}
	if repos == nil {
		panic("Repositories cannot be nil")
	}

	r.Use(gin.Recovery())
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer()))

	apiHandlers := handlers.InitHandlers(s, repos)

	// no auth needed for liveness
	r.GET("/health", handlers.HealthCheck)

	apiKeyMiddleware := middleware.APIKeyMiddleware(middleware.APIKeyConfig{
		HeaderName:  "X-UNSUBLINK-API-KEY",
		ValidAPIKey: apikey,
	})

	api := r.Group("/v1")
	api.Use(apiKeyMiddleware)
	api.Use(middleware.TracingMiddleware())
	{
		extractions := api.Group("/extractions")
		{
			extractions.POST("", apiHandlers.Extractions.Create())
			extractions.GET("/:id", apiHandlers.Extractions.Get())
			extractions.POST("/:id/execute", apiHandlers.Extractions.Execute())
		}
	}
}
