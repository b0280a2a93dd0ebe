// Package main is the entry point for the ecommerce-cli application.
// It registers the maintenance sub-commands (schema migration, users, products, transactions)
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/RyotaMitaraiWeb/ecommerce-server/cmd/ecommerce-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "ecommerce-cli",
		Short: "Maintenance CLI for the ecommerce server",
		Long: `ecommerce-cli operates directly on the ecommerce server's database.
It migrates the schema, creates and inspects users, seeds and removes products,
and lists purchase history.

The database is taken from the same YAML file the REST API reads (--config),
and ECOMMERCE_* environment variables override it the same way.`,
	}

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "configs/rest-app.yaml"
	}
	rootCmd.PersistentFlags().String(commands.ConfigFlag, defaultConfig, "Path to the configuration file")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	if err := commands.InitProductCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize product commands: %w", err)
	}

	if err := commands.InitTransactionCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize transaction commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
