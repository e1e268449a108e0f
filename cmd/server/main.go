package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordecho/internal/audio"
	"wordecho/internal/config"
	"wordecho/internal/database"
	"wordecho/internal/handlers"
	"wordecho/internal/repository"
	"wordecho/internal/service"
	"wordecho/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize TTS service with audio directory
	ttsService, err := audio.NewTTSService(cfg.AudioDir)
	if err != nil {
		log.Fatalf("Failed to initialize TTS service: %v", err)
	}

	// Initialize repositories and services
	wordRepo := repository.NewWordRepository(db)
	wordService := service.NewWordService(wordRepo, ttsService)

	// Pre-generate any missing audio files in the background
	go func() {
		if err := wordService.WarmAudioCache(); err != nil {
			log.Printf("Warning: Failed to warm audio cache: %v", err)
		}
	}()

	// Initialize the practice session manager and sample the first run
	manager := session.NewManager(wordService, ttsService, session.Config{
		Size:           cfg.SessionSize,
		CorrectDelay:   cfg.CorrectFeedbackDelay,
		IncorrectDelay: cfg.IncorrectFeedbackDelay,
	})
	manager.Restart()

	// Initialize handlers
	practiceHandler := handlers.NewPracticeHandler(manager)
	wordHandler := handlers.NewWordHandler(wordService)

	// Setup routes
	mux := http.NewServeMux()

	// Practice session routes
	mux.HandleFunc("GET /api/practice", practiceHandler.State)
	mux.HandleFunc("POST /api/practice/start", practiceHandler.Start)
	mux.HandleFunc("POST /api/practice/submit", practiceHandler.Submit)
	mux.HandleFunc("POST /api/practice/replay", practiceHandler.Replay)
	mux.HandleFunc("POST /api/practice/restart", practiceHandler.Restart)

	// Word management routes
	mux.HandleFunc("GET /api/words", wordHandler.List)
	mux.HandleFunc("GET /api/words/count", wordHandler.Count)
	mux.HandleFunc("POST /api/words", wordHandler.Create)
	mux.HandleFunc("DELETE /api/words/{id}", wordHandler.Delete)

	// Generated audio clips and the static UI
	mux.Handle("GET /audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(cfg.AudioDir))))
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticFilesPath)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
