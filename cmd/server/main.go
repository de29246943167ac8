package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "banksampah-backend/internal/api/http"
	"banksampah-backend/internal/config"
	"banksampah-backend/internal/logger"
	"banksampah-backend/internal/repository/postgres"
	"banksampah-backend/internal/security"
	"banksampah-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bank Sampah Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenExpiry)

	var verifier security.Verifier = tokenManager
	if cfg.Auth.Mode == "firebase" {
		logger.Info("Using Firebase ID token verification", "credentials_file", cfg.Auth.FirebaseCredentials)
		firebaseVerifier, err := security.NewFirebaseVerifier(context.Background(), cfg.Auth.FirebaseCredentials)
		if err != nil {
			logger.Error("Failed to initialize Firebase verifier", "error", err)
			log.Fatalf("Failed to initialize Firebase verifier: %v", err)
		}
		verifier = firebaseVerifier
	}

	// Initialize Services
	resolver := service.NewAccountResolver(store.Accounts())
	unitSvc := service.NewUnitService(store.Units(), store.Transactions())
	depositSvc := service.NewDepositService(store, resolver)
	withdrawalSvc := service.NewWithdrawalService(store)
	reportSvc := service.NewReportService(store.Units(), store.Accounts(), store.Transactions(), store.Reports())
	authSvc := service.NewAuthService(store.Users(), tokenManager)

	// Initialize HTTP handlers
	authHandler := httpapi.NewAuthHandler(authSvc)
	unitHandler := httpapi.NewUnitHandler(unitSvc, reportSvc)
	depositHandler := httpapi.NewDepositHandler(depositSvc)
	withdrawalHandler := httpapi.NewWithdrawalHandler(withdrawalSvc)
	reportHandler := httpapi.NewReportHandler(reportSvc)
	authMiddleware := httpapi.NewAuthMiddleware(verifier)

	router := httpapi.NewRouter(
		authHandler,
		unitHandler,
		depositHandler,
		withdrawalHandler,
		reportHandler,
		authMiddleware,
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
