package main

import (
	"log"

	"triptrove/internal/config"
	"triptrove/internal/database"
	"triptrove/internal/email"
	"triptrove/internal/handlers"
	"triptrove/internal/logger"
	"triptrove/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Initialize(logger.ParseLevel(cfg.LogLevel), cfg.IsDevelopment())

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	sessionManager := session.NewManager(database.NewStateStore(db))
	if rec, ok := sessionManager.Current(); ok {
		logger.Info("Restored session", "email", rec.Email)
	}

	emailService := email.NewService(cfg)
	if emailService.IsEnabled() {
		log.Println("Email service enabled with Mailgun")
	} else {
		log.Println("Email service disabled - Mailgun not configured")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	handlers.SetupRoutes(r, db, cfg, sessionManager, emailService)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
