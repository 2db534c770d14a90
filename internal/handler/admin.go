package handler

import (
	"errors"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the password-gated management surface: product CRUD,
// order management, store configuration and reports. Every route behind it
// goes through the auth middleware.
type AdminHandler struct {
	productService *service.ProductService
	orderService   *service.OrderService
	configService  *service.ConfigService
	reportService  *service.ReportService
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(
	productService *service.ProductService,
	orderService *service.OrderService,
	configService *service.ConfigService,
	reportService *service.ReportService,
) *AdminHandler {
	return &AdminHandler{
		productService: productService,
		orderService:   orderService,
		configService:  configService,
		reportService:  reportService,
	}
}

// Dashboard returns the counters shown on the admin landing screen, plus the
// role of the session the auth middleware validated.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No admin session"})
		return
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"role":          claims.Role,
		"totalProducts": len(h.productService.List(ctx, "")),
		"totalOrders":   len(h.orderService.List(ctx, service.OrderFilters{})),
	})
}

// ListProducts returns the unfiltered catalog for the management table.
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products := h.productService.List(c.Request.Context(), "")
	c.JSON(http.StatusOK, model.ProductListResponse{
		Products: products,
		Total:    len(products),
	})
}

// CreateProduct adds a catalog entry under a fresh id.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req model.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces the catalog entry with the given id.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var req model.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := h.productService.Update(c.Request.Context(), productID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a catalog entry. The confirm=true query parameter is
// the server-side stand-in for the admin UI's confirmation dialog; without
// it nothing is deleted. Historical orders keep their product snapshots.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deletion requires confirm=true"})
		return
	}

	if err := h.productService.Delete(c.Request.Context(), productID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// ListOrders returns the order history, newest first, narrowed by the q,
// status and wilaya query parameters.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	filters := service.OrderFilters{
		Query:  c.Query("q"),
		Wilaya: c.Query("wilaya"),
	}
	if status := c.Query("status"); status != "" {
		s := model.OrderStatus(status)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		filters.Status = s
	}

	orders := h.orderService.List(c.Request.Context(), filters)
	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}

// UpdateOrderStatus changes the status of one order.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req model.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to update order",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetConfig returns the store configuration.
func (h *AdminHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.configService.Get(c.Request.Context()))
}

// SaveConfig replaces the store configuration wholesale.
func (h *AdminHandler) SaveConfig(c *gin.Context) {
	var config model.AdminConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.configService.Save(c.Request.Context(), config); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to save config",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, config)
}

// Reports returns the sales aggregates.
func (h *AdminHandler) Reports(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.Sales(c.Request.Context()))
}
