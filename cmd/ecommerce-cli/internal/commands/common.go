package commands

import (
	"encoding/json"
	"fmt"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/app"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/persistence"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/infrastructure/security"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ConfigFlag names the persistent flag holding the configuration file path
const ConfigFlag = "config"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// backend is the database and the services a command runs against
type backend struct {
	db           *gorm.DB
	userRepo     users.UserRepository
	users        users.UserService
	products     products.ProductService
	transactions transactions.TransactionService
}

// openBackend loads the configuration named by the config flag, connects and migrates the database.
func openBackend(cmd *cobra.Command, log logger.Logger) (*backend, error) {
	configPath, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", ConfigFlag, err)
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}

	hasher, err := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

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
	productService, err := app.NewProductService(productRepo, userRepo, cfg.Catalog.ProductsPerPage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}
	transactionService, err := app.NewTransactionService(transactionRepo, productRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction service: %w", err)
	}

	return &backend{
		db:           db,
		userRepo:     userRepo,
		users:        userService,
		products:     productService,
		transactions: transactionService,
	}, nil
}

func (b *backend) close(log logger.Logger) {
	if err := persistence.CloseDB(b.db); err != nil {
		log.Error("failed to close database ", err)
	}
}

// printJSON writes v as indented JSON to the command's output
func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
