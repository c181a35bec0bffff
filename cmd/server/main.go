package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aspire_system/internal/api"
	"aspire_system/internal/app/service"
	"aspire_system/internal/common/security"
	"aspire_system/internal/domain/repository"
	"aspire_system/internal/platform/config"
	"aspire_system/internal/platform/database"
	"aspire_system/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("failed to load configuration", "error", err)
	}
	log := logger.New(cfg.LogLevel)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	userRepo := repository.NewPgUserRepository(db)
	tokens := security.NewTokenService([]byte(cfg.JWT.Secret), cfg.TokenLifetime(), cfg.JWT.CookieName)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)

	if cfg.DevUser.Seed {
		if err := service.EnsureDevUser(context.Background(), userRepo, log,
			cfg.DevUser.Username, cfg.DevUser.Password, cfg.DevUser.Email); err != nil {
			log.Fatal("failed to seed dev user", "error", err)
		}
	}

	router := api.NewRouter(authService, userService, tokens, userRepo)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("server starting", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "error", err)
		}
	}()

	<-stop

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown failed", "error", err)
	}
	log.Info("server stopped gracefully")
}
