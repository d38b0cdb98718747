package main

import (
	"context"
	"log"

	"github.com/invoicegen/invoice-generator-service/internal/config"
	"github.com/invoicegen/invoice-generator-service/internal/database"
	"github.com/invoicegen/invoice-generator-service/internal/handler"
	"github.com/invoicegen/invoice-generator-service/internal/middleware"
	"github.com/invoicegen/invoice-generator-service/internal/repository"
	"github.com/invoicegen/invoice-generator-service/internal/server"
	"github.com/invoicegen/invoice-generator-service/internal/service"
)

func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the document store
	log.Println("Connecting to MongoDB...")
	db, err := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}()
	log.Println("MongoDB connection successful")

	// Initialize repository and services
	invoiceRepo := repository.NewMongoInvoiceRepository(db)
	invoiceService := service.NewInvoiceService(invoiceRepo)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.JWTExpiration)

	// Create handlers
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	authHandler := handler.NewAuthHandler(authService)

	// Create and configure server
	log.Println("Configuring server...")
	appServer := server.NewServer(cfg)
	invoiceHandler.RegisterRoutes(appServer.Router(), middleware.OptionalAuth(authService))
	authHandler.RegisterRoutes(appServer.Router())

	// Start server (blocking call)
	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server shutdown complete")
}
