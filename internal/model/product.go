package model

// Product is a catalog entry. Quantity is the remaining stock.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

// ProductRequest is the create/update payload from the admin product form.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
}

// ProductListResponse is the catalog listing response.
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
