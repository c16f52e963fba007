package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pradiptars/stockpoint-be/internal/api"
	"github.com/pradiptars/stockpoint-be/internal/auth"
	"github.com/pradiptars/stockpoint-be/internal/config"
	"github.com/pradiptars/stockpoint-be/internal/database"
	"github.com/pradiptars/stockpoint-be/internal/logger"
	"github.com/pradiptars/stockpoint-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// The signing secret and validity window are fixed for the process lifetime.
	codec := auth.NewTokenCodec([]byte(cfg.JWTSecret), cfg.TokenValidity)

	// Set up services
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	authService := services.NewAuthService(userService, codec)
	fileService, err := services.NewFileService(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize file storage")
	}

	// Set up router
	router := api.NewRouter(codec, authService, userService, categoryService, fileService)

	// Set up server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
