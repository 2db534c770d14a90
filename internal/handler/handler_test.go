package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/auth"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/route"
	"storefront/internal/service"
	"storefront/internal/storage"
	"storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []model.Product{
	{ID: "p1", Name: "Widget", Price: 2500, Quantity: 10},
	{ID: "p4", Name: "Heirloom", Price: 3500, Quantity: 0},
}

// newTestRouter wires the API exactly as main does, over memory storage.
func newTestRouter(t *testing.T, scriptURL string) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	appStore := store.New(storage.NewMemoryDriver(), testCatalog)
	if scriptURL != "" {
		require.NoError(t, appStore.SaveAdminConfig(context.Background(), model.AdminConfig{ScriptURL: scriptURL}))
	}

	authService := auth.NewService("open-sesame", []byte("test-secret"))
	productService := service.NewProductService(appStore)
	orderService := service.NewOrderService(appStore)
	configService := service.NewConfigService(appStore)
	reportService := service.NewReportService(appStore)
	submissionService := service.NewSubmissionService(appStore, productService, orderService, nil)

	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler(productService)
	orderHandler := NewOrderHandler(submissionService)
	viewHandler := NewViewHandler(productService, authService, route.NewNavigator())
	adminHandler := NewAdminHandler(productService, orderService, configService, reportService)

	r := gin.New()
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/products", catalogHandler.ListProducts)
	r.GET("/api/products/:id", catalogHandler.GetProduct)
	r.GET("/api/view", viewHandler.Resolve)
	r.POST("/api/orders", orderHandler.Submit)
	r.GET("/api/orders/success/:id", orderHandler.Success)

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(authService))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.GET("/orders", adminHandler.ListOrders)
	admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.GET("/config", adminHandler.GetConfig)
	admin.PUT("/config", adminHandler.SaveConfig)
	admin.GET("/reports", adminHandler.Reports)

	return r, appStore
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/auth/login", `{"password":"open-sesame"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := do(r, http.MethodGet, "/api/admin/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/admin/orders", "", "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r)
	w = do(r, http.MethodGet, "/api/admin/orders", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t, "")
	w := do(r, http.MethodPost, "/api/auth/login", `{"password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := do(r, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list model.ProductListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Total)

	w = do(r, http.MethodGet, "/api/products/p1", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/products/ghost", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitOrderEndToEnd(t *testing.T) {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"success":true,"orderId":"ORD-123"}`))
	}))
	t.Cleanup(endpoint.Close)

	r, _ := newTestRouter(t, endpoint.URL)

	body := `{"productId":"p1","name":"Amine","phone":"0550","quantity":2}`
	w := do(r, http.MethodPost, "/api/orders", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Order    model.Order `json:"order"`
		Redirect string      `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ORD-123", resp.Order.ID)
	assert.Equal(t, "/order/success/ORD-123", resp.Redirect)

	// The confirmation page sees the order immediately after.
	token := login(t, r)
	w = do(r, http.MethodGet, "/api/admin/orders", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ORD-123")
}

func TestSubmitOrderOutOfStock(t *testing.T) {
	r, _ := newTestRouter(t, "http://unused.invalid")

	body := `{"productId":"p4","name":"Amine","phone":"0550","quantity":1}`
	w := do(r, http.MethodPost, "/api/orders", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitOrderWithoutEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, "")

	body := `{"productId":"p1","name":"Amine","phone":"0550","quantity":1}`
	w := do(r, http.MethodPost, "/api/orders", body, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestOrderSuccessEchoesAnyID(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := do(r, http.MethodGet, "/api/orders/success/anything-at-all", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anything-at-all")
}

func TestDeleteProductNeedsConfirmation(t *testing.T) {
	r, _ := newTestRouter(t, "")
	token := login(t, r)

	w := do(r, http.MethodDelete, "/api/admin/products/p1", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/api/admin/products/p1?confirm=true", "", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/products/p1", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	r, appStore := newTestRouter(t, "")
	token := login(t, r)

	require.NoError(t, appStore.SaveOrders(context.Background(), []model.Order{
		{ID: "ORD-1", Status: model.StatusPending},
	}))

	w := do(r, http.MethodPut, "/api/admin/orders/ORD-1/status", `{"status":"shipped"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/api/admin/orders/ORD-1/status", `{"status":"delivered"}`, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/api/admin/orders/ORD-404/status", `{"status":"delivered"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfigRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t, "")
	token := login(t, r)

	body := `{"scriptUrl":"https://script.example/exec","sheetUrl":"https://sheet.example"}`
	w := do(r, http.MethodPut, "/api/admin/config", body, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/admin/config", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var config model.AdminConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &config))
	assert.Equal(t, "https://script.example/exec", config.ScriptURL)
}

func TestDashboardIncludesSessionRole(t *testing.T) {
	r, _ := newTestRouter(t, "")
	token := login(t, r)

	w := do(r, http.MethodGet, "/api/admin/dashboard", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Role          string `json:"role"`
		TotalProducts int    `json:"totalProducts"`
		TotalOrders   int    `json:"totalOrders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Role)
	assert.Equal(t, 2, resp.TotalProducts)
	assert.Equal(t, 0, resp.TotalOrders)
}

func TestViewEndpointDrivesNavigator(t *testing.T) {
	gin.SetMode(gin.TestMode)

	appStore := store.New(storage.NewMemoryDriver(), testCatalog)
	authService := auth.NewService("open-sesame", []byte("test-secret"))
	nav := route.NewNavigator()

	var seen []route.Route
	unsubscribe := nav.Subscribe(func(r route.Route) { seen = append(seen, r) })
	defer unsubscribe()

	viewHandler := NewViewHandler(service.NewProductService(appStore), authService, nav)
	r := gin.New()
	r.GET("/api/view", viewHandler.Resolve)

	w := do(r, http.MethodGet, "/api/view?path=/product/p1", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	// The subscriber heard the change before the response was written, and
	// the navigator still points at the resolved route.
	require.Len(t, seen, 1)
	assert.Equal(t, route.KindProductDetail, seen[0].Kind)
	assert.Equal(t, "p1", seen[0].ID)
	assert.Equal(t, seen[0], nav.Current())
}

func TestViewEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := do(r, http.MethodGet, "/api/view?path=/product/p1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"productDetail"`)

	w = do(r, http.MethodGet, "/api/view?path=/product/ghost", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"notFound"`)

	// Admin paths resolve to login without a token, and to the real view
	// with one.
	w = do(r, http.MethodGet, "/api/view?path=/admin/orders", "", "")
	assert.Contains(t, w.Body.String(), `"adminLogin"`)

	token := login(t, r)
	w = do(r, http.MethodGet, "/api/view?path=/admin/orders", "", token)
	assert.Contains(t, w.Body.String(), `"adminOrders"`)
}
