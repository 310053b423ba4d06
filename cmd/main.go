package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joaovmb/team-manager/config"
	"github.com/joaovmb/team-manager/db"
	"github.com/joaovmb/team-manager/handlers"
	"github.com/joaovmb/team-manager/realtime"
	"github.com/joaovmb/team-manager/repositories"
	api "github.com/joaovmb/team-manager/routes"
	"github.com/joaovmb/team-manager/services"
	"github.com/joaovmb/team-manager/storage"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	hub := realtime.NewHub(logger)
	go hub.Run()
	logger.Info("realtime hub started")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	transactionRepo := repositories.NewPostgresTransactionRepository(dbConn)
	messageRepo := repositories.NewPostgresMessageRepository(dbConn)
	profileRepo := repositories.NewPostgresProfileRepository(dbConn)
	settingsRepo := repositories.NewPostgresSettingsRepository(dbConn)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(userRepo, profileRepo, settingsRepo)
	playerService := services.NewPlayerService(playerRepo, hub)
	transactionService := services.NewTransactionService(transactionRepo, hub)
	messageService := services.NewMessageService(messageRepo, playerRepo, hub, cfg.WhatsAppCountryCode)
	profileService := services.NewProfileService(profileRepo, uploader)
	settingsService := services.NewSettingsService(settingsRepo)
	dashboardService := services.NewDashboardService(playerRepo, transactionRepo)
	logger.Info("services initialized")

	router := api.InitRoutes(api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Player:      handlers.NewPlayerHandler(playerService),
		Transaction: handlers.NewTransactionHandler(transactionService),
		Message:     handlers.NewMessageHandler(messageService),
		Profile:     handlers.NewProfileHandler(profileService),
		Settings:    handlers.NewSettingsHandler(settingsService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		WebSocket:   handlers.NewWebSocketHandler(hub),
	}, []byte(cfg.JWTSecretKey), cfg.CORSAllowedOrigins)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
