package v1

import (
	"net/http"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/sessions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling account-related requests
type UserHandler interface {
	GetCurrent(ctx *gin.Context)
	ListTransactions(ctx *gin.Context)
	CheckUsername(ctx *gin.Context)
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	ChangeTheme(ctx *gin.Context)
	ChangePalette(ctx *gin.Context)
}

// userHandler struct holds the services
type userHandler struct {
	userService        users.UserService
	transactionService transactions.TransactionService
	issuer             sessions.TokenIssuer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService, transactionService transactions.TransactionService, issuer sessions.TokenIssuer) UserHandler {
	return &userHandler{
		userService:        userService,
		transactionService: transactionService,
		issuer:             issuer,
	}
}

// GetCurrent handles GET /user and returns the caller's stored state.
func (handler *userHandler) GetCurrent(ctx *gin.Context) {
	state, _ := currentUser(ctx)

	user, err := handler.userService.GetByID(ctx, state.ID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user.State())
}

// ListTransactions handles GET /user/transactions.
func (handler *userHandler) ListTransactions(ctx *gin.Context) {
	state, _ := currentUser(ctx)

	list, err := handler.transactionService.ListByBuyer(ctx, state.ID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	response := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		response = append(response, newTransactionResponse(t))
	}
	ctx.JSON(http.StatusOK, response)
}

// CheckUsername handles GET /user/:username. It answers 200 when the username is taken.
func (handler *userHandler) CheckUsername(ctx *gin.Context) {
	if _, err := handler.userService.GetByUsername(ctx, ctx.Param("username")); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// Register handles POST /user/register.
func (handler *userHandler) Register(ctx *gin.Context) {
	var request users.Credentials
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := handler.userService.Register(ctx, request)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	handler.respondWithToken(ctx, http.StatusCreated, user)
}

// Login handles POST /user/login.
func (handler *userHandler) Login(ctx *gin.Context) {
	var request users.Credentials
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := handler.userService.Login(ctx, request)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	handler.respondWithToken(ctx, http.StatusOK, user)
}

func (handler *userHandler) respondWithToken(ctx *gin.Context, status int, user *users.User) {
	state := user.State()
	token, err := handler.issuer.Issue(state)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(status, AuthResponse{UserState: state, AccessToken: token})
}

// Logout handles DELETE /user/logout. The token is revoked by the BlacklistToken guard.
func (handler *userHandler) Logout(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
	ctx.Writer.WriteHeaderNow()
}

// ChangeTheme handles PUT /user/theme.
func (handler *userHandler) ChangeTheme(ctx *gin.Context) {
	state, _ := currentUser(ctx)

	var request ThemeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := handler.userService.ChangeTheme(ctx, state.ID, request.Theme); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, request)
}

// ChangePalette handles PUT /user/palette.
func (handler *userHandler) ChangePalette(ctx *gin.Context) {
	state, _ := currentUser(ctx)

	var request PaletteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := handler.userService.ChangePalette(ctx, state.ID, request.Palette); err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, request)
}
