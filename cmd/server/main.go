package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/api"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/database"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/metrics"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/models"
	"github.com/mannyurbano/vgc-gameplan-manager-react-sub000/internal/services"
)

func main() {
	// Database path
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./gameplans.db"
	}

	// Initialize database
	if err := database.Initialize(dbPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := database.RunMigrations(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	pasteService := services.NewPasteService()
	githubService := services.NewGitHubService()
	if !githubService.Configured() {
		log.Println("GitHub OAuth credentials not set; /api/auth/github/exchange disabled")
	}
	importService := services.NewImportService(database.GetDB())

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Refresh the gameplan count gauge in the background with panic recovery
	go func() {
		for {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("PANIC in stats worker: %v - restarting in 30 seconds", r)
					}
				}()
				runStatsWorker(ctx)
			}()

			select {
			case <-ctx.Done():
				return // Graceful shutdown
			case <-time.After(30 * time.Second):
				log.Println("Stats worker restarting after panic recovery...")
			}
		}
	}()

	// Setup router
	router := api.SetupRouter(pasteService, githubService, importService)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Create HTTP server for graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel the context to stop the stats worker
	cancel()

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// runStatsWorker keeps the gameplan count gauge current until ctx ends.
func runStatsWorker(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	update := func() {
		var count int64
		if err := database.GetDB().Model(&models.Gameplan{}).Count(&count).Error; err != nil {
			log.Printf("stats worker: count failed: %v", err)
			return
		}
		metrics.GameplansTotal.Set(float64(count))
	}

	update()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			update()
		}
	}
}
