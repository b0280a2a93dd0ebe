package commands

import (
	"fmt"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// TransactionCommandHandler prints purchase history via CLI.
type TransactionCommandHandler struct {
	logger logger.Logger
}

// NewTransactionCommandHandler initializes a TransactionCommandHandler with a console logger.
func NewTransactionCommandHandler() (*TransactionCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &TransactionCommandHandler{logger: loggerInstance}, nil
}

// ListTransactionsCmd prints a buyer's transactions, newest first
func (h *TransactionCommandHandler) ListTransactionsCmd(cmd *cobra.Command, _ []string) {
	buyerID, err := cmd.Flags().GetString("buyer-id")
	if err != nil {
		h.logger.Error("invalid buyer-id flag ", err)
		return
	}

	b, err := openBackend(cmd, h.logger)
	if err != nil {
		h.logger.Error(err)
		return
	}
	defer b.close(h.logger)

	list, err := b.transactions.ListByBuyer(cmd.Context(), buyerID)
	if err != nil {
		h.logger.Error("failed to list transactions: ", errs.MessagesOf(err))
		return
	}

	if err := printJSON(cmd, list); err != nil {
		h.logger.Error(err)
	}
}

// InitTransactionCommands registers transaction-related commands
func InitTransactionCommands(rootCmd *cobra.Command) error {
	handler, err := NewTransactionCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create transaction command handler %w", err)
	}

	var listTransactionsCmd = &cobra.Command{
		Use:   "list-transactions",
		Short: "List the purchases of a user",
		Run:   handler.ListTransactionsCmd,
	}
	listTransactionsCmd.Flags().StringP("buyer-id", "", "", "Id of the buyer")
	rootCmd.AddCommand(listTransactionsCmd)

	return nil
}
