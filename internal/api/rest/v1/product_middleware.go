package v1

import (
	"net/http"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/gin-gonic/gin"
)

// ProductMiddleware defines the guards that relate the caller to the product in the :id parameter.
// Every guard except AttachProduct expects a session guard earlier in the chain.
type ProductMiddleware interface {
	// AttachProduct loads the product or responds 404.
	AttachProduct(ctx *gin.Context)
	// AuthorizeOwner lets only the product's creator through.
	AuthorizeOwner(ctx *gin.Context)
	// CheckIfOwner records whether the caller created the product.
	CheckIfOwner(ctx *gin.Context)
	// AuthorizeBuyer rejects callers that bought the product already or created it.
	AuthorizeBuyer(ctx *gin.Context)
	// CheckIfHasBought records whether the caller bought the product.
	CheckIfHasBought(ctx *gin.Context)
}

type productMiddleware struct {
	productService products.ProductService
}

// NewProductMiddleware creates a new ProductMiddleware
func NewProductMiddleware(productService products.ProductService) ProductMiddleware {
	return &productMiddleware{productService: productService}
}

// product returns the attached product, loading and attaching it when absent.
func (m *productMiddleware) product(ctx *gin.Context) (*products.Product, error) {
	if product, ok := attachedProduct(ctx); ok {
		return product, nil
	}

	product, err := m.productService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		return nil, err
	}
	ctx.Set(productKey, product)
	return product, nil
}

func (m *productMiddleware) AttachProduct(ctx *gin.Context) {
	if _, err := m.product(ctx); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Next()
}

func (m *productMiddleware) AuthorizeOwner(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		abortWithMessage(ctx, http.StatusUnauthorized, errs.MsgInvalidSession)
		return
	}

	product, err := m.product(ctx)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	if user.IsAnonymous() || product.OwnerID != user.ID {
		abortWithMessage(ctx, http.StatusForbidden, errs.MsgNotProductOwner)
		return
	}
	ctx.Next()
}

func (m *productMiddleware) CheckIfOwner(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		abortWithMessage(ctx, http.StatusUnauthorized, errs.MsgInvalidSession)
		return
	}

	product, err := m.product(ctx)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.Set(isOwnerKey, !user.IsAnonymous() && product.OwnerID == user.ID)
	ctx.Next()
}

func (m *productMiddleware) AuthorizeBuyer(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		abortWithMessage(ctx, http.StatusUnauthorized, errs.MsgInvalidSession)
		return
	}

	hasBought, err := m.productService.HasBought(ctx, user.ID, ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	if hasBought {
		abortWithMessage(ctx, http.StatusForbidden, errs.MsgAlreadyBoughtItem)
		return
	}
	if ctx.GetBool(isOwnerKey) {
		abortWithMessage(ctx, http.StatusForbidden, errs.MsgCannotBuyOwnProduct)
		return
	}

	ctx.Set(hasBoughtKey, false)
	ctx.Next()
}

func (m *productMiddleware) CheckIfHasBought(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		abortWithMessage(ctx, http.StatusUnauthorized, errs.MsgInvalidSession)
		return
	}

	hasBought, err := m.productService.HasBought(ctx, user.ID, ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.Set(hasBoughtKey, hasBought)
	ctx.Next()
}
