package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"slidecraft/backend/internal/handler"
	"slidecraft/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	godotenv.Load(".env.local")

	env := os.Getenv("ENV")
	log.Printf("[INFO] Starting SlideCraft env=%s", env)

	if err := handler.InitGenerator(); err != nil {
		log.Printf("[WARN] Failed to initialize deck generator: %v", err)
		log.Println("[WARN] Generation functionality will be unavailable")
	} else {
		log.Println("[INFO] Deck generator initialized successfully")
	}

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	allowedOrigins := []string{}
	if gin.Mode() != gin.ReleaseMode {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173")
	}
	if extraOrigins := os.Getenv("ALLOWED_ORIGINS"); extraOrigins != "" {
		allowedOrigins = append(allowedOrigins, strings.Split(extraOrigins, ",")...)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// One generation every 30s per IP, 50 generations per day in total
	ipLimiter := middleware.NewIPRateLimiter(rate.Every(30*time.Second), 1)
	dailyQuota := middleware.NewDailyQuota(50)

	log.Printf("[INFO] Rate limiting enabled")

	// Health check endpoints (outside /api group, no rate limiting)
	r.GET("/health", handler.HandleHealth)
	r.GET("/ready", handler.HandleReadiness)

	api := r.Group("/api")
	{
		api.POST("/generate", middleware.RateLimitMiddleware(ipLimiter, dailyQuota), handler.HandleGenerate)
		api.GET("/presentations/:id", handler.HandleGetPresentation)
		api.GET("/presentations/:id/download", handler.HandleDownloadPresentation)
		api.DELETE("/presentations/:id", handler.HandleDeletePresentation)
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}
	if _, err := os.Stat(filepath.Join(staticDir, "index.html")); err == nil {
		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(404, gin.H{"error": "Not found"})
				return
			}
			c.File(filepath.Join(staticDir, "index.html"))
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("[INFO] Server ready port=%s allowed_origins=%v", port, allowedOrigins)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
