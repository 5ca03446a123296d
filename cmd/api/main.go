package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kamenpro-backend/config"
	_ "kamenpro-backend/docs"
	"kamenpro-backend/internal/catalog"
	v1 "kamenpro-backend/internal/delivery/http/v1"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/internal/repository/file"
	"kamenpro-backend/internal/repository/postgres"
	"kamenpro-backend/internal/usecase"
	"kamenpro-backend/pkg/database"
	"kamenpro-backend/pkg/email"
	"kamenpro-backend/pkg/logger"
	"kamenpro-backend/pkg/webhook"

	"github.com/gin-gonic/gin"
)

// @title           KamenPro Backend API
// @version         1.0
// @description     Inquiry relay and structured data endpoints for the KamenPro website.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting KamenPro backend", "port", cfg.Port)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 3. Setup Mail Transport
	transport, err := email.NewTransport(cfg)
	if err != nil {
		logger.Log.Error("Invalid mail transport", "error", err)
		os.Exit(1)
	}
	if err := transport.Configured(); err != nil {
		// The server still starts; submissions fail with a 500 until fixed
		logger.Log.Warn("Mail transport not fully configured - inquiries will fail", "transport", transport.Name(), "error", err)
	}
	composer := email.NewComposer(cfg.SMTPFromName, email.SenderAddress(cfg), cfg.ContactEmailTo)

	var notifier domain.InquiryNotifier
	if n := webhook.NewNotifier(cfg.WebhookURL, 10*time.Second); n != nil {
		notifier = n
	}

	// 4. Setup UseCases
	inquiryUC := usecase.NewInquiryUsecase(composer, transport, notifier)
	contactUC := usecase.NewContactUsecase(composer, transport)

	locations, err := catalog.Locations()
	if err != nil {
		logger.Log.Error("Failed to load location catalog", "error", err)
		os.Exit(1)
	}

	// Product pages are optional; without a source the product schema route is not mounted
	var products domain.ProductSource
	switch {
	case cfg.ProductsFile != "":
		products = file.NewProductRepository(cfg.ProductsFile)
	case cfg.DBUrl != "":
		dbCtx, dbCancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := database.NewPostgresConnection(dbCtx, cfg.DBUrl)
		dbCancel()
		if err != nil {
			logger.Log.Warn("Product database unavailable - product schema route disabled", "error", err)
		} else {
			defer pool.Close()
			products = postgres.NewProductRepository(pool)
		}
	}

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		InquiryUC: inquiryUC,
		ContactUC: contactUC,
		Locations: locations,
		Products:  products,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// Long enough for an in-flight SMTP exchange to finish
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
