package main

import (
	"log"
	"net/http"
	"os"

	"storefront/internal/auth"
	"storefront/internal/handler"
	"storefront/internal/infrastructure"
	"storefront/internal/middleware"
	"storefront/internal/route"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Open the configured key-value storage backend
	driver, err := infrastructure.OpenDriver(infrastructure.DefaultStorageConfig())
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	appStore := store.New(driver, infrastructure.SeedProducts())

	// Initialize services
	authService := auth.NewService(
		envOr("ADMIN_PASSWORD", "admin123"),
		[]byte(envOr("JWT_SECRET", "dev-secret-change-me")),
	)
	productService := service.NewProductService(appStore)
	orderService := service.NewOrderService(appStore)
	configService := service.NewConfigService(appStore)
	reportService := service.NewReportService(appStore)
	submissionService := service.NewSubmissionService(appStore, productService, orderService, nil)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(productService)
	orderHandler := handler.NewOrderHandler(submissionService)
	viewHandler := handler.NewViewHandler(productService, authService, route.NewNavigator())
	adminHandler := handler.NewAdminHandler(productService, orderService, configService, reportService)

	// Setup Gin router
	r := gin.Default()

	// CORS (the storefront client is served separately)
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Public routes
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/products", catalogHandler.ListProducts)
	r.GET("/api/products/:id", catalogHandler.GetProduct)
	r.GET("/api/view", viewHandler.Resolve)
	r.POST("/api/orders", orderHandler.Submit)
	r.GET("/api/orders/success/:id", orderHandler.Success)

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(authService))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/products", adminHandler.ListProducts)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.GET("/orders", adminHandler.ListOrders)
	admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.GET("/config", adminHandler.GetConfig)
	admin.PUT("/config", adminHandler.SaveConfig)
	admin.GET("/reports", adminHandler.Reports)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting storefront API on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

// envOr gets environment variable with fallback
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
