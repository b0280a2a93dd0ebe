// cmd/ecommerce-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	v1 "github.com/RyotaMitaraiWeb/ecommerce-server/internal/api/rest/v1"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/app"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/sessions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/persistence"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/security"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	services  *appServices
	issuer    sessions.TokenIssuer
	blacklist sessions.TokenBlacklist
}

type appServices struct {
	users        users.UserService
	products     products.ProductService
	transactions transactions.TransactionService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize session infrastructure
	issuer, err := security.NewJWTTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	hasher, err := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(db, hasher, cfg.Catalog.ProductsPerPage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:        db,
		services:  services,
		issuer:    issuer,
		blacklist: security.NewMemoryTokenBlacklist(),
	}, nil
}

// initializeApplicationServices sets up repositories and the services on top of them
func initializeApplicationServices(db *gorm.DB, hasher users.PasswordHasher, productsPerPage int, log logger.Logger) (*appServices, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	productRepo, err := persistence.NewGormProductRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}

	transactionRepo, err := persistence.NewGormTransactionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction repository: %w", err)
	}

	userService, err := app.NewUserService(userRepo, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	productService, err := app.NewProductService(productRepo, userRepo, productsPerPage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}

	transactionService, err := app.NewTransactionService(transactionRepo, productRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		users:        userService,
		products:     productService,
		transactions: transactionService,
	}, nil
}

// newCorsConfig allows the given origins. Credentials are only allowed for an explicit origin list.
func newCorsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           12 * time.Hour,
	}
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(newCorsConfig(cfg.Cors.AllowOrigins)))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.users,
		deps.services.products,
		deps.services.transactions,
		deps.issuer,
		deps.blacklist,
	)

	// Revoked tokens are dropped once they expire
	pruneCtx, stopPruner := context.WithCancel(context.Background())
	defer stopPruner()
	go security.RunPruner(pruneCtx, deps.blacklist, cfg.Auth.BlacklistPruneInterval, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
