// Package main is the entry point for the textbook-rsa-rest-api application.
// It serves the key store over HTTP and shuts down gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/textbook-rsa/internal/api/rest/v1"
	"github.com/MGTheTrain/textbook-rsa/internal/app"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	services, err := initializeServices(restConfig, db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, services, log)
}

type appServices struct {
	keyPairGeneration keys.KeyPairGenerationService
	keyPairMetadata   keys.KeyPairMetadataService
	cipher            keys.CipherService
}

// initializeServices migrates the schema and wires repository, processor and services
func initializeServices(cfg *config.RestConfig, db *gorm.DB, log logger.Logger) (*appServices, error) {
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	keyPairRepo, err := persistence.NewGormKeyPairRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair repository: %w", err)
	}

	source := random.NewCryptoSource()
	if cfg.KeyGen.Seed != nil {
		log.Warn("Key generation is seeded, keys are reproducible and insecure")
		source = random.NewSeededSource(*cfg.KeyGen.Seed)
	}

	options := cryptography.KeyGeneratorOptions{
		DistinctPrimes: cfg.KeyGen.DistinctPrimes,
		Concurrent:     cfg.KeyGen.Concurrent,
	}
	rsaProcessor, err := cryptography.NewRSAProcessor(source, options, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	keyPairGenerationService, err := app.NewKeyPairGenerationService(rsaProcessor, keyPairRepo, cfg.KeyGen.BitLength, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair generation service: %w", err)
	}

	keyPairMetadataService, err := app.NewKeyPairMetadataService(keyPairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair metadata service: %w", err)
	}

	cipherService, err := app.NewCipherService(rsaProcessor, keyPairRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		keyPairGeneration: keyPairGenerationService,
		keyPairMetadata:   keyPairMetadataService,
		cipher:            cipherService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, services.keyPairGeneration, services.keyPairMetadata, services.cipher)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig.String(), ", shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
