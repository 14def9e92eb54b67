package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/auth"
	"github.com/news-portal-api/internal/config"
	"github.com/news-portal-api/internal/service"
	"github.com/rs/zerolog"
)

// HealthChecker reports whether the backing store is reachable and how its pool is doing
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
	Stats() sql.DBStats
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, resolver auth.Resolver, health HealthChecker, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(timeoutMiddleware(cfg.Server.RequestTimeout))

	// Handlers
	publicHandler := NewPublicHandler(services, log)
	categoryHandler := NewCategoryHandler(services, log)
	mediaHandler := NewMediaHandler(services, log)
	newsHandler := NewNewsHandler(services, log)
	overviewHandler := NewOverviewHandler(services, log)

	// Health check
	router.GET("/health", healthCheck(health))

	// API v1
	v1 := router.Group("/v1")
	{
		// Public homepage
		home := v1.Group("/home")
		{
			home.GET("/categories", publicHandler.Homepage)
			home.GET("/ticker", publicHandler.Ticker)
		}

		// Public reads
		v1.GET("/news/:slug", publicHandler.NewsBySlug)
		v1.GET("/categories", publicHandler.ListCategories)
		v1.GET("/categories/:slug", publicHandler.CategoryBySlug)
		v1.GET("/categories/:slug/news", publicHandler.CategoryNews)

		// Editorial dashboard
		dashboard := v1.Group("/dashboard")
		dashboard.Use(authMiddleware(resolver, log))
		{
			dashboard.GET("/overview", overviewHandler.Summary)

			categories := dashboard.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
				categories.GET("/slug", categoryHandler.SuggestSlug)
				categories.GET("/:id", categoryHandler.Get)
				categories.PUT("/:id", categoryHandler.Update)
				categories.DELETE("/:id", categoryHandler.Delete)
				categories.PUT("/:id/homepage", categoryHandler.SetHomepage)
			}

			media := dashboard.Group("/media")
			{
				media.GET("", mediaHandler.List)
				media.POST("", mediaHandler.Create)
				media.GET("/:id", mediaHandler.Get)
				media.DELETE("/:id", mediaHandler.Delete)
			}

			news := dashboard.Group("/news")
			{
				news.GET("", newsHandler.List)
				news.POST("", newsHandler.Create)
				news.PUT("/:id/status", newsHandler.UpdateStatus)
				news.PUT("/:id/categories", newsHandler.SetCategories)
				news.DELETE("/:id", newsHandler.Delete)
			}
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "news-portal-api",
		}

		if health != nil {
			if err := health.HealthCheck(c.Request.Context()); err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "unhealthy"
				body["database"] = "unreachable"
			} else {
				stats := health.Stats()
				body["database"] = gin.H{
					"open_connections": stats.OpenConnections,
					"in_use":           stats.InUse,
					"idle":             stats.Idle,
				}
			}
		}

		c.JSON(status, body)
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
					"code":  "internal_error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// timeoutMiddleware bounds every request context so slow store calls are cancelled
func timeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
