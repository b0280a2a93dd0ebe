package commands

import (
	"fmt"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/products"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ProductCommandHandler encapsulates catalog maintenance via CLI.
type ProductCommandHandler struct {
	logger logger.Logger
}

// NewProductCommandHandler initializes a ProductCommandHandler with a console logger.
func NewProductCommandHandler() (*ProductCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &ProductCommandHandler{logger: loggerInstance}, nil
}

type productOutput struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
	OwnerID string  `json:"creator"`
}

func newProductOutput(p *products.Product) productOutput {
	return productOutput{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image, OwnerID: p.OwnerID}
}

// CreateProductCmd adds a product owned by an existing user
func (h *ProductCommandHandler) CreateProductCmd(cmd *cobra.Command, _ []string) {
	ownerID, err := cmd.Flags().GetString("owner-id")
	if err != nil {
		h.logger.Error("invalid owner-id flag ", err)
		return
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		h.logger.Error("invalid name flag ", err)
		return
	}
	price, err := cmd.Flags().GetFloat64("price")
	if err != nil {
		h.logger.Error("invalid price flag ", err)
		return
	}
	image, err := cmd.Flags().GetString("image")
	if err != nil {
		h.logger.Error("invalid image flag ", err)
		return
	}

	b, err := openBackend(cmd, h.logger)
	if err != nil {
		h.logger.Error(err)
		return
	}
	defer b.close(h.logger)

	product, err := b.products.Create(cmd.Context(), products.ProductInput{Name: name, Price: price, Image: image}, ownerID)
	if err != nil {
		h.logger.Error("failed to create product: ", errs.MessagesOf(err))
		return
	}

	if err := printJSON(cmd, newProductOutput(product)); err != nil {
		h.logger.Error(err)
	}
}

// ListProductsCmd prints products matching the name, owner and sort flags
func (h *ProductCommandHandler) ListProductsCmd(cmd *cobra.Command, _ []string) {
	query := products.NewProductQuery()
	var err error
	if query.Name, err = cmd.Flags().GetString("name"); err != nil {
		h.logger.Error("invalid name flag ", err)
		return
	}
	if query.OwnerID, err = cmd.Flags().GetString("owner-id"); err != nil {
		h.logger.Error("invalid owner-id flag ", err)
		return
	}
	if query.SortBy, err = cmd.Flags().GetString("by"); err != nil {
		h.logger.Error("invalid by flag ", err)
		return
	}
	if query.SortOrder, err = cmd.Flags().GetString("sort"); err != nil {
		h.logger.Error("invalid sort flag ", err)
		return
	}
	if query.Page, err = cmd.Flags().GetInt("page"); err != nil {
		h.logger.Error("invalid page flag ", err)
		return
	}

	b, err := openBackend(cmd, h.logger)
	if err != nil {
		h.logger.Error(err)
		return
	}
	defer b.close(h.logger)

	page, err := b.products.List(cmd.Context(), query)
	if err != nil {
		h.logger.Error("failed to list products: ", errs.MessagesOf(err))
		return
	}

	list := make([]productOutput, 0, len(page.Products))
	for _, p := range page.Products {
		list = append(list, newProductOutput(p))
	}

	if err := printJSON(cmd, map[string]interface{}{"products": list, "total": page.Total}); err != nil {
		h.logger.Error(err)
	}
}

// DeleteProductCmd removes a product with its purchases and transactions
func (h *ProductCommandHandler) DeleteProductCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		h.logger.Error("invalid id flag ", err)
		return
	}

	b, err := openBackend(cmd, h.logger)
	if err != nil {
		h.logger.Error(err)
		return
	}
	defer b.close(h.logger)

	product, err := b.products.Delete(cmd.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete product: ", errs.MessagesOf(err))
		return
	}
	h.logger.Info("Deleted product ", product.ID)
}

// InitProductCommands registers product-related commands
func InitProductCommands(rootCmd *cobra.Command) error {
	handler, err := NewProductCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create product command handler %w", err)
	}

	var createProductCmd = &cobra.Command{
		Use:   "create-product",
		Short: "Add a product to the catalog",
		Run:   handler.CreateProductCmd,
	}
	createProductCmd.Flags().StringP("owner-id", "", "", "Id of the user that sells the product")
	createProductCmd.Flags().StringP("name", "", "", "Product name (5 to 100 characters)")
	createProductCmd.Flags().Float64P("price", "", 0, "Price, rounded to cents")
	createProductCmd.Flags().StringP("image", "", "", "Image URL")
	rootCmd.AddCommand(createProductCmd)

	var listProductsCmd = &cobra.Command{
		Use:   "list-products",
		Short: "List products",
		Run:   handler.ListProductsCmd,
	}
	listProductsCmd.Flags().StringP("name", "", "", "Only products whose name contains this text")
	listProductsCmd.Flags().StringP("owner-id", "", "", "Only products of this user")
	listProductsCmd.Flags().StringP("by", "", "", "Sort field (name or price)")
	listProductsCmd.Flags().StringP("sort", "", "", "Sort order (asc or desc)")
	listProductsCmd.Flags().IntP("page", "", 0, "Page number, 0 lists every match")
	rootCmd.AddCommand(listProductsCmd)

	var deleteProductCmd = &cobra.Command{
		Use:   "delete-product",
		Short: "Delete a product and its purchase history",
		Run:   handler.DeleteProductCmd,
	}
	deleteProductCmd.Flags().StringP("id", "", "", "Product id")
	rootCmd.AddCommand(deleteProductCmd)

	return nil
}
