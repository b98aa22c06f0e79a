package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"accident-analytics-api/config"
	"accident-analytics-api/dataset"
	"accident-analytics-api/handlers"
	"accident-analytics-api/middleware"
	"accident-analytics-api/models"
	"accident-analytics-api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The canonical table is loaded up front: a missing or malformed
	// source file aborts startup rather than failing every request.
	store := dataset.NewStore(cfg.Data)
	if _, err := store.Load(); err != nil {
		log.Fatalf("failed to load accident dataset: %v", err)
	}

	// Postgres backs only the dashboard accounts; without it the API
	// serves data with auth endpoints disabled.
	var db *gorm.DB
	gdb, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Printf("warning: could not connect to database: %v", err)
		log.Println("running without account endpoints")
	} else {
		if err := gdb.AutoMigrate(&models.User{}); err != nil {
			log.Printf("warning: user table migration failed: %v", err)
		}
		db = gdb
	}

	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("warning: redis unavailable, responses will not be cached: %v", err)
	}
	defer cache.Close()

	var authService *services.AuthService
	if cfg.JWT.Secret != "" {
		authService = services.NewAuthService(cfg.JWT)
	} else {
		log.Println("JWT_SECRET not set, running without token auth")
	}

	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))
	router.Use(middleware.CountRequests())

	handlers.SetupRoutes(router, store, cache, db, authService)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	log.Println("server exited")
}
