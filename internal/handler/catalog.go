package handler

import (
	"errors"
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public product catalog.
type CatalogHandler struct {
	productService *service.ProductService
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(productService *service.ProductService) *CatalogHandler {
	return &CatalogHandler{productService: productService}
}

// ListProducts returns the catalog, filtered by the q search parameter.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.productService.List(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, model.ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// GetProduct returns one product by id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	product, err := h.productService.Get(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}

	c.JSON(http.StatusOK, product)
}
