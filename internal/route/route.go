// Package route turns storefront fragment paths into a closed set of screen
// variants and resolves them against the live collections. The fragment
// grammar is data from the client's address bar, not part of the server's
// own HTTP routing.
package route

import "strings"

// Kind names every screen the storefront can show.
type Kind string

const (
	KindHome             Kind = "home"
	KindProductDetail    Kind = "productDetail"
	KindOrderForm        Kind = "orderForm"
	KindOrderSuccess     Kind = "orderSuccess"
	KindAdminLogin       Kind = "adminLogin"
	KindAdminDashboard   Kind = "adminDashboard"
	KindAdminOrders      Kind = "adminOrders"
	KindAdminProductForm Kind = "adminProductForm"
	KindAdminReports     Kind = "adminReports"
	KindNotFound         Kind = "notFound"
)

// Route is the parsed form of a fragment path. ID is meaningful only when
// HasID is set; that distinguishes /admin/add from /admin/edit/{id}.
type Route struct {
	Kind  Kind
	ID    string
	HasID bool
}

// Admin reports whether the route belongs to the password-gated admin area.
func (r Route) Admin() bool {
	switch r.Kind {
	case KindAdminDashboard, KindAdminOrders, KindAdminProductForm, KindAdminReports:
		return true
	}
	return false
}

// Parse maps a fragment path to a Route. Precedence follows the screen
// hierarchy: admin paths first with exact matches before the dashboard
// catch-all, then order success before the generic order form, then product
// detail. Anything unrecognized is the home catalog.
func Parse(path string) Route {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	switch {
	case strings.HasPrefix(path, "/admin"):
		switch {
		case path == "/admin/orders":
			return Route{Kind: KindAdminOrders}
		case path == "/admin/add":
			return Route{Kind: KindAdminProductForm}
		case strings.HasPrefix(path, "/admin/edit/"):
			return Route{Kind: KindAdminProductForm, ID: strings.TrimPrefix(path, "/admin/edit/"), HasID: true}
		case path == "/admin/reports":
			return Route{Kind: KindAdminReports}
		default:
			return Route{Kind: KindAdminDashboard}
		}
	case strings.HasPrefix(path, "/order/success/"):
		return Route{Kind: KindOrderSuccess, ID: strings.TrimPrefix(path, "/order/success/"), HasID: true}
	case strings.HasPrefix(path, "/order/"):
		return Route{Kind: KindOrderForm, ID: strings.TrimPrefix(path, "/order/"), HasID: true}
	case strings.HasPrefix(path, "/product/"):
		return Route{Kind: KindProductDetail, ID: strings.TrimPrefix(path, "/product/"), HasID: true}
	default:
		return Route{Kind: KindHome}
	}
}

// ConfirmationPath is the fragment the client navigates to after an order is
// accepted.
func ConfirmationPath(orderID string) string {
	return "/order/success/" + orderID
}
