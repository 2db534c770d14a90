package route

import (
	"strings"

	"storefront/internal/model"
)

// View is what the client should render for a path, with any entity the
// screen needs already bound.
type View struct {
	Kind Kind `json:"kind"`
	// Product is set for product detail, order form and admin edit views.
	Product *model.Product `json:"product,omitempty"`
	// Products is the search-filtered catalog on the home view.
	Products []model.Product `json:"products,omitempty"`
	// OrderID echoes the confirmation id verbatim on the success view.
	OrderID string `json:"orderId,omitempty"`
	// MaxQuantity caps the order form quantity at the product's stock.
	MaxQuantity int `json:"maxQuantity,omitempty"`
}

// Resolve is a pure function from (path, catalog, admin session, search
// query) to the screen to render. Unknown entity ids yield the not-found
// view, never an error. The order success view echoes any id without
// checking it against the order history.
func Resolve(path string, products []model.Product, authenticated bool, searchQuery string) View {
	return ResolveRoute(Parse(path), products, authenticated, searchQuery)
}

// ResolveRoute resolves an already-parsed route, typically the current route
// of a Navigator.
func ResolveRoute(r Route, products []model.Product, authenticated bool, searchQuery string) View {
	if r.Admin() {
		if !authenticated {
			return View{Kind: KindAdminLogin}
		}
		if r.Kind == KindAdminProductForm && r.HasID {
			product := findProduct(products, r.ID)
			if product == nil {
				return View{Kind: KindNotFound}
			}
			return View{Kind: KindAdminProductForm, Product: product}
		}
		return View{Kind: r.Kind}
	}

	switch r.Kind {
	case KindProductDetail:
		product := findProduct(products, r.ID)
		if product == nil {
			return View{Kind: KindNotFound}
		}
		return View{Kind: KindProductDetail, Product: product}
	case KindOrderSuccess:
		return View{Kind: KindOrderSuccess, OrderID: r.ID}
	case KindOrderForm:
		product := findProduct(products, r.ID)
		if product == nil {
			return View{Kind: KindNotFound}
		}
		return View{Kind: KindOrderForm, Product: product, MaxQuantity: product.Quantity}
	default:
		return View{Kind: KindHome, Products: FilterByName(products, searchQuery)}
	}
}

// FilterByName keeps products whose name contains query, case-insensitively.
// An empty query keeps everything.
func FilterByName(products []model.Product, query string) []model.Product {
	if query == "" {
		return append([]model.Product(nil), products...)
	}
	needle := strings.ToLower(query)
	filtered := []model.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func findProduct(products []model.Product, id string) *model.Product {
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p
		}
	}
	return nil
}
