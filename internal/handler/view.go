package handler

import (
	"net/http"
	"strings"

	"storefront/internal/auth"
	"storefront/internal/route"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// ViewHandler resolves storefront fragment paths into view descriptors, so a
// deep link can be rendered without the client re-implementing the routing
// rules. Every resolved path goes through the navigator, so subscribers see
// the route change before the response is written.
type ViewHandler struct {
	productService *service.ProductService
	authService    *auth.Service
	navigator      *route.Navigator
}

// NewViewHandler creates a view handler over navigator.
func NewViewHandler(productService *service.ProductService, authService *auth.Service, navigator *route.Navigator) *ViewHandler {
	return &ViewHandler{productService: productService, authService: authService, navigator: navigator}
}

// Resolve maps the path query parameter to a view descriptor. A bearer token
// is optional here: without a valid one, admin paths resolve to the login
// view instead of failing.
func (h *ViewHandler) Resolve(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		path = "/"
	}

	r := h.navigator.Navigate(path)

	products := h.productService.List(c.Request.Context(), "")
	view := route.ResolveRoute(r, products, h.authenticated(c), c.Query("q"))
	c.JSON(http.StatusOK, view)
}

func (h *ViewHandler) authenticated(c *gin.Context) bool {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return false
	}
	_, err := h.authService.ValidateToken(parts[1])
	return err == nil
}
