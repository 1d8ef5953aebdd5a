package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"aichatbot/internal/api"
	"aichatbot/internal/config"
	"aichatbot/internal/core"
	"aichatbot/internal/storage"
	"aichatbot/internal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Setup logging
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(strings.ToLower(config.AppConfig.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	// Initialize document store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbStore, err := store.NewMongoStore(ctx, config.AppConfig.MongoURL, config.AppConfig.DBName)
	cancel()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dbStore.Close(ctx); err != nil {
			logrus.Errorf("Error closing database connection: %v", err)
		}
	}()
	logrus.Infof("Connected to MongoDB database: %s", config.AppConfig.DBName)

	// Initialize model gateway
	llmService, err := core.NewLLMService(context.Background(), config.AppConfig.GeminiAPIKey,
		config.AppConfig.ChatModel, config.AppConfig.AnalysisModel)
	if err != nil {
		logrus.Fatalf("Failed to initialize LLM service: %v", err)
	}
	defer llmService.Close()

	// Initialize upload storage
	diskStorage, err := storage.NewDisk(config.AppConfig.UploadDir)
	if err != nil {
		logrus.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Initialize feature services
	userService := core.NewUserService(dbStore)
	chatService := core.NewChatService(dbStore, llmService)
	fileService := core.NewFileService(dbStore, llmService, diskStorage)
	searchService := core.NewSearchService(dbStore, llmService)

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(userService, chatService, fileService, searchService)
	router := api.NewRouter(apiHandler, config.AppConfig.CORSOrigins)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // LLM calls can take time
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logrus.Infof("Starting server on %s. Press Ctrl+C to quit.", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Could not listen on %s: %v", serverAddr, err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Give active connections time to finish.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting gracefully")
}
