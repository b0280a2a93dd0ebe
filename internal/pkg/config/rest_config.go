package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g. ECOMMERCE_DATABASE_DSN
const EnvPrefix = "ecommerce"

// CorsSettings holds the allowed origins for browser clients
type CorsSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1"`
}

// RestConfig is the complete configuration of the REST API
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Cors     CorsSettings     `mapstructure:"cors"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Auth     AuthSettings     `mapstructure:"auth"`
	Catalog  CatalogSettings  `mapstructure:"catalog"`
}

// Validate checks the config and each of its sections
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}

	return nil
}

// DefaultCorsOrigin is the local storefront dev server
const DefaultCorsOrigin = "http://localhost:4200"

func defaults() map[string]any {
	return map[string]any{
		"port":                          "8080",
		"cors.allow_origins":            []string{DefaultCorsOrigin},
		"database.type":                 SqliteDbType,
		"database.dsn":                  "",
		"database.name":                 "",
		"logger.log_level":              LogLevelInfo,
		"logger.log_type":               LogTypeConsole,
		"logger.file_path":              "",
		"logger.max_size":               0,
		"logger.max_backups":            0,
		"logger.max_age":                0,
		"auth.jwt_secret":               "",
		"auth.token_ttl":                60 * 24 * time.Hour,
		"auth.bcrypt_cost":              9,
		"auth.blacklist_prune_interval": time.Hour,
		"catalog.products_per_page":     DefaultProductsPerPage,
	}
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates the result.
// A missing file is not an error as long as the environment provides every required value.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Comma separated origins are accepted from the environment
	if len(cfg.Cors.AllowOrigins) == 1 && strings.Contains(cfg.Cors.AllowOrigins[0], ",") {
		cfg.Cors.AllowOrigins = strings.Split(cfg.Cors.AllowOrigins[0], ",")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
