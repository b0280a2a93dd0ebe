package v1

import (
	"net/http"
	"strconv"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/gin-gonic/gin"
)

// ProductHandler defines the interface for handling product-related requests
type ProductHandler interface {
	ListAll(ctx *gin.Context)
	Search(ctx *gin.Context)
	ListOwn(ctx *gin.Context)
	GetDetails(ctx *gin.Context)
	GetOwned(ctx *gin.Context)
	Create(ctx *gin.Context)
	Edit(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Buy(ctx *gin.Context)
}

// productHandler struct holds the services
type productHandler struct {
	productService products.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService products.ProductService) ProductHandler {
	return &productHandler{productService: productService}
}

// parseProductQuery reads the by, sort and page query parameters.
// Sorting applies only when both by and sort are given. An unparsable page means no pagination.
func parseProductQuery(ctx *gin.Context) *products.ProductQuery {
	query := products.NewProductQuery()

	by, sort := ctx.Query("by"), ctx.Query("sort")
	if by != "" && sort != "" {
		query.SortBy = by
		query.SortOrder = sort
	}

	if page, err := strconv.Atoi(ctx.Query("page")); err == nil {
		query.Page = page
	}

	return query
}

func (handler *productHandler) list(ctx *gin.Context, query *products.ProductQuery) {
	page, err := handler.productService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProductListResponse(page))
}

// ListAll handles GET /product/all
// @Param by query string false "Sort field (name or price)"
// @Param sort query string false "Sort order (asc or desc)"
// @Param page query int false "Page number, 0 disables pagination"
func (handler *productHandler) ListAll(ctx *gin.Context) {
	handler.list(ctx, parseProductQuery(ctx))
}

// Search handles GET /product/search and matches names case-insensitively.
func (handler *productHandler) Search(ctx *gin.Context) {
	query := parseProductQuery(ctx)
	query.Name = ctx.Query("name")
	handler.list(ctx, query)
}

// ListOwn handles GET /product/own.
func (handler *productHandler) ListOwn(ctx *gin.Context) {
	state, _ := currentUser(ctx)

	query := parseProductQuery(ctx)
	query.OwnerID = state.ID
	handler.list(ctx, query)
}

// GetDetails handles GET /product/:id after the product and relation guards ran.
func (handler *productHandler) GetDetails(ctx *gin.Context) {
	product, ok := attachedProduct(ctx)
	if !ok {
		abortWithMessage(ctx, http.StatusNotFound, errs.MsgProductNotFound)
		return
	}
	state, _ := currentUser(ctx)

	ctx.JSON(http.StatusOK, ProductDetailsResponse{
		ProductResponse: newProductResponse(product),
		HasBought:       ctx.GetBool(hasBoughtKey),
		IsOwner:         ctx.GetBool(isOwnerKey),
		IsLogged:        !state.IsAnonymous(),
	})
}

// GetOwned handles GET /product/:id/isOwner after AuthorizeOwner ran.
func (handler *productHandler) GetOwned(ctx *gin.Context) {
	product, ok := attachedProduct(ctx)
	if !ok {
		abortWithMessage(ctx, http.StatusNotFound, errs.MsgProductNotFound)
		return
	}
	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// Create handles POST /product.
func (handler *productHandler) Create(ctx *gin.Context) {
	state, _ := currentUser(ctx)

	var request products.ProductInput
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	product, err := handler.productService.Create(ctx, request, state.ID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newProductResponse(product))
}

// Edit handles PUT /product/:id.
func (handler *productHandler) Edit(ctx *gin.Context) {
	var request products.ProductInput
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, msgInvalidBody)
		return
	}

	product, err := handler.productService.Edit(ctx, ctx.Param("id"), request)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, IDResponse{ID: product.ID})
}

// Delete handles DELETE /product/:id.
func (handler *productHandler) Delete(ctx *gin.Context) {
	product, err := handler.productService.Delete(ctx, ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, IDResponse{ID: product.ID})
}

// Buy handles POST /product/:id/buy.
func (handler *productHandler) Buy(ctx *gin.Context) {
	state, _ := currentUser(ctx)

	product, err := handler.productService.Buy(ctx, state.ID, ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, IDResponse{ID: product.ID})
}
