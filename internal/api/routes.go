package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/api/handlers"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/metrics"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/services"
)

func SetupRouter(pasteService *services.PasteService, githubService *services.GitHubService, importService *services.ImportService) *gin.Engine {
	router := gin.Default()

	// Get frontend dist path from env
	frontendPath := os.Getenv("FRONTEND_DIST_PATH")
	serveFrontend := frontendPath != "" && dirExists(frontendPath)

	// CORS configuration - allow origins from environment or use defaults
	config := cors.DefaultConfig()
	if corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS"); corsOrigins != "" {
		config.AllowOrigins = strings.Split(corsOrigins, ",")
	} else {
		config.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = false // Explicitly set
	router.Use(cors.New(config))
	router.Use(requestMetrics())

	// Initialize handlers
	gameplanHandler := handlers.NewGameplanHandler()
	extractHandler := handlers.NewExtractHandler()
	pasteHandler := handlers.NewPasteHandler(pasteService)
	authHandler := handlers.NewAuthHandler(githubService)
	importHandler := handlers.NewImportHandler(importService)

	// API routes
	api := router.Group("/api")
	{
		// Gameplan routes
		gameplans := api.Group("/gameplans")
		{
			gameplans.GET("", gameplanHandler.ListGameplans)
			gameplans.POST("", gameplanHandler.CreateGameplan)
			gameplans.GET("/:id", gameplanHandler.GetGameplan)
			gameplans.PUT("/:id", gameplanHandler.UpdateGameplan)
			gameplans.DELETE("/:id", gameplanHandler.DeleteGameplan)
			gameplans.GET("/:id/team", gameplanHandler.GetTeam)
			gameplans.GET("/:id/matchups", gameplanHandler.GetMatchups)
			gameplans.GET("/:id/replays", gameplanHandler.GetReplays)
			gameplans.GET("/:id/calcs", gameplanHandler.GetCalcs)
		}

		api.POST("/import", importHandler.ImportGameplans)
		api.GET("/paste/fetch", pasteHandler.FetchPaste)
		api.POST("/auth/github/exchange", authHandler.ExchangeGitHubCode)
		api.GET("/sprites/:name", extractHandler.GetSprite)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve frontend static files
	if serveFrontend {
		indexPath := filepath.Join(frontendPath, "index.html")

		// Serve static assets
		router.Static("/assets", filepath.Join(frontendPath, "assets"))

		// Serve other static files (favicon, etc.)
		router.StaticFile("/vite.svg", filepath.Join(frontendPath, "vite.svg"))

		// Serve root index.html
		router.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})

		// SPA fallback - serve index.html for all non-API routes
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path

			// Don't serve index.html for API routes
			if strings.HasPrefix(path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}

			// Serve index.html for SPA routing
			c.File(indexPath)
		})
	}

	return router
}

// requestMetrics records request count and latency per route. The
// templated route path keeps label cardinality bounded.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
