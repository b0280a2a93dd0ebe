package commands

import (
	"fmt"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UserCommandHandler encapsulates account maintenance via CLI.
type UserCommandHandler struct {
	logger logger.Logger
}

// NewUserCommandHandler initializes a UserCommandHandler with a console logger.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &UserCommandHandler{logger: loggerInstance}, nil
}

// CreateUserCmd registers a user with the same rules as the register endpoint
func (h *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		h.logger.Error("invalid username flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		h.logger.Error("invalid password flag ", err)
		return
	}

	b, err := openBackend(cmd, h.logger)
	if err != nil {
		h.logger.Error(err)
		return
	}
	defer b.close(h.logger)

	user, err := b.users.Register(cmd.Context(), users.Credentials{Username: username, Password: password})
	if err != nil {
		h.logger.Error("failed to create user: ", errs.MessagesOf(err))
		return
	}

	if err := printJSON(cmd, user.State()); err != nil {
		h.logger.Error(err)
	}
}

// GetUserCmd prints a user looked up by id or username
func (h *UserCommandHandler) GetUserCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		h.logger.Error("invalid id flag ", err)
		return
	}
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		h.logger.Error("invalid username flag ", err)
		return
	}
	if id == "" && username == "" {
		h.logger.Error("either --id or --username is required")
		return
	}

	b, err := openBackend(cmd, h.logger)
	if err != nil {
		h.logger.Error(err)
		return
	}
	defer b.close(h.logger)

	var user *users.User
	if id != "" {
		user, err = b.users.GetByID(cmd.Context(), id)
	} else {
		user, err = b.users.GetByUsername(cmd.Context(), username)
	}
	if err != nil {
		h.logger.Error("failed to get user: ", errs.MessagesOf(err))
		return
	}

	if err := printJSON(cmd, user.State()); err != nil {
		h.logger.Error(err)
	}
}

// ListUsersCmd prints every user ordered by username
func (h *UserCommandHandler) ListUsersCmd(cmd *cobra.Command, _ []string) {
	b, err := openBackend(cmd, h.logger)
	if err != nil {
		h.logger.Error(err)
		return
	}
	defer b.close(h.logger)

	list, err := b.userRepo.List(cmd.Context())
	if err != nil {
		h.logger.Error("failed to list users ", err)
		return
	}

	states := make([]users.UserState, 0, len(list))
	for _, u := range list {
		states = append(states, u.State())
	}

	if err := printJSON(cmd, states); err != nil {
		h.logger.Error(err)
	}
}

// InitUserCommands registers user-related commands
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	var createUserCmd = &cobra.Command{
		Use:   "create-user",
		Short: "Register a user",
		Run:   handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("username", "", "", "Username (5 to 10 alphanumeric characters, starting with a letter)")
	createUserCmd.Flags().StringP("password", "", "", "Password (at least 6 characters)")
	rootCmd.AddCommand(createUserCmd)

	var getUserCmd = &cobra.Command{
		Use:   "get-user",
		Short: "Show a user by id or username",
		Run:   handler.GetUserCmd,
	}
	getUserCmd.Flags().StringP("id", "", "", "User id")
	getUserCmd.Flags().StringP("username", "", "", "Username")
	rootCmd.AddCommand(getUserCmd)

	var listUsersCmd = &cobra.Command{
		Use:   "list-users",
		Short: "List all users",
		Run:   handler.ListUsersCmd,
	}
	rootCmd.AddCommand(listUsersCmd)

	return nil
}
