package v1

import (
	"net/http"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/sessions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, StatusResponse{Status: "running"})
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	userService users.UserService,
	productService products.ProductService,
	transactionService transactions.TransactionService,
	issuer sessions.TokenIssuer,
	blacklist sessions.TokenBlacklist) {

	session := NewSessionMiddleware(issuer, blacklist)
	guard := NewProductMiddleware(productService)

	r.GET("/", health)

	v1 := r.Group(BasePath) // lookup in version file
	v1.GET("", health)

	// User Routes
	userHandler := NewUserHandler(userService, transactionService, issuer)
	v1.GET("/user", session.AuthorizeUser, userHandler.GetCurrent)
	v1.GET("/user/transactions", session.AuthorizeUser, userHandler.ListTransactions)
	v1.GET("/user/:username", userHandler.CheckUsername)
	v1.POST("/user/register", session.AuthorizeGuest, userHandler.Register)
	v1.POST("/user/login", session.AuthorizeGuest, userHandler.Login)
	v1.DELETE("/user/logout", session.AuthorizeUser, session.BlacklistToken, userHandler.Logout)
	v1.PUT("/user/theme", session.AuthorizeUser, userHandler.ChangeTheme)
	v1.PUT("/user/palette", session.AuthorizeUser, userHandler.ChangePalette)

	// Product Routes
	productHandler := NewProductHandler(productService)
	v1.GET("/product/all", productHandler.ListAll)
	v1.GET("/product/search", productHandler.Search)
	v1.GET("/product/own", session.AuthorizeUser, productHandler.ListOwn)
	v1.GET("/product/:id", session.AttachLoginStatus, guard.AttachProduct, guard.CheckIfHasBought, guard.CheckIfOwner, productHandler.GetDetails)
	v1.GET("/product/:id/isOwner", session.AttachLoginStatus, guard.AuthorizeOwner, productHandler.GetOwned)
	v1.POST("/product", session.AuthorizeUser, productHandler.Create)
	v1.PUT("/product/:id", session.AuthorizeUser, guard.AuthorizeOwner, productHandler.Edit)
	v1.DELETE("/product/:id", session.AuthorizeUser, guard.AuthorizeOwner, productHandler.Delete)
	v1.POST("/product/:id/buy", session.AuthorizeUser, guard.AttachProduct, guard.CheckIfOwner, guard.AuthorizeBuyer, productHandler.Buy)
}
