package app

import (
	"os"

	"leave-portal/internal/middleware"
	"leave-portal/internal/request"
	"leave-portal/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects the infrastructure and registers all routes on the
// given engine.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&request.Request{}); err != nil {
		return err
	}
	zap.L().Info("database schema ready")

	router.Use(middleware.RequestID())
	router.Use(corsMiddleware())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "leave-portal"})
	})

	api := router.Group("/api")

	// Redis only backs the optional Idempotency-Key guard on submissions;
	// the service runs without it.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		api.Use(middleware.Idempotency(redisClient))
	}

	registerModules(api, db)

	return nil
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	origins := []string{
		"http://127.0.0.1:5500",
		"http://127.0.0.1:5501",
		"http://127.0.0.1:5503",
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		origins = append(origins, frontend)
	}
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID"}
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
