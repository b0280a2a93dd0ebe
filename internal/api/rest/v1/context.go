package v1

import (
	"strings"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/gin-gonic/gin"
)

// Keys under which guards store request state.
const (
	userStateKey      = "user"
	tokenKey          = "token"
	tokenExpiresAtKey = "tokenExpiresAt"
	productKey        = "product"
	isOwnerKey        = "isOwner"
	hasBoughtKey      = "hasBought"
)

// bearerToken reads the Authorization header. Both "Bearer <token>" and a bare token are accepted.
func bearerToken(ctx *gin.Context) string {
	header := strings.TrimSpace(ctx.GetHeader("Authorization"))
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return header
}

func setSession(ctx *gin.Context, state users.UserState, token string, expiresAt time.Time) {
	ctx.Set(userStateKey, state)
	ctx.Set(tokenKey, token)
	ctx.Set(tokenExpiresAtKey, expiresAt)
}

func currentUser(ctx *gin.Context) (users.UserState, bool) {
	value, ok := ctx.Get(userStateKey)
	if !ok {
		return users.UserState{}, false
	}
	state, ok := value.(users.UserState)
	return state, ok
}

func attachedProduct(ctx *gin.Context) (*products.Product, bool) {
	value, ok := ctx.Get(productKey)
	if !ok {
		return nil, false
	}
	product, ok := value.(*products.Product)
	return product, ok && product != nil
}
