package commands

import (
	"fmt"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler applies the database schema.
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler initializes a MigrateCommandHandler with a console logger.
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &MigrateCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd creates or updates every table
func (h *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	b, err := openBackend(cmd, h.logger)
	if err != nil {
		h.logger.Error(err)
		return
	}
	defer b.close(h.logger)

	h.logger.Info("Database migrations completed successfully")
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create migrate command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
