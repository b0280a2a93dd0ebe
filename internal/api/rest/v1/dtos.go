package v1

import (
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/transactions"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
)

// ErrorResponse is one element of the error array every failed request returns.
type ErrorResponse struct {
	Message string `json:"msg"`
}

// StatusResponse reports that the server is up.
type StatusResponse struct {
	Status string `json:"status"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	users.UserState
	AccessToken string `json:"accessToken"`
}

// ThemeRequest changes the caller's theme.
type ThemeRequest struct {
	Theme users.Theme `json:"theme"`
}

// PaletteRequest changes the caller's palette.
type PaletteRequest struct {
	Palette users.Palette `json:"palette"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// ProductDetailsResponse adds the caller's relation to the product.
type ProductDetailsResponse struct {
	ProductResponse
	HasBought bool `json:"hasBought"`
	IsOwner   bool `json:"isOwner"`
	IsLogged  bool `json:"isLogged"`
}

// ProductListResponse is one page of products and the number of matches overall.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
}

// IDResponse identifies the product a mutation applied to.
type IDResponse struct {
	ID string `json:"id"`
}

// TransactionResponse is one entry of the caller's purchase history.
type TransactionResponse struct {
	ID        string                       `json:"_id"`
	Buyer     string                       `json:"buyer"`
	Product   *transactions.ProductSummary `json:"product"`
	CreatedAt time.Time                    `json:"createdAt"`
	UpdatedAt time.Time                    `json:"updatedAt"`
}

func newProductResponse(p *products.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}

func newProductListResponse(page *products.ProductPage) ProductListResponse {
	list := make([]ProductResponse, 0, len(page.Products))
	for _, p := range page.Products {
		list = append(list, newProductResponse(p))
	}
	return ProductListResponse{Products: list, Total: page.Total}
}

func newTransactionResponse(t *transactions.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		Buyer:     t.BuyerID,
		Product:   t.Product,
		CreatedAt: t.DateTimeCreated,
		UpdatedAt: t.DateTimeUpdated,
	}
}
