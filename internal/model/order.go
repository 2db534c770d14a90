package model

import "time"

// OrderStatus is the closed set of states an order can be in. Nothing else
// may ever be written to the status field.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the three allowed statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Customer holds the shipping contact captured with an order.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Wilaya  string `json:"wilaya"`
	Address string `json:"address"`
}

// ProductSnapshot freezes what was bought at the moment of purchase. It must
// not change afterwards, even if the catalog entry is edited or deleted.
type ProductSnapshot struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a confirmed customer order. The ID is assigned by the submission
// endpoint; status is the only field mutated after creation.
type Order struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Customer  Customer        `json:"customer"`
	Product   ProductSnapshot `json:"product"`
	Notes     string          `json:"notes"`
	Status    OrderStatus     `json:"status"`
}

// OrderDraft is the live order form bound to one catalog product. It is never
// persisted; on acceptance it is folded into an Order.
type OrderDraft struct {
	ProductID string `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	Wilaya    string `json:"wilaya"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

// OrderStatusRequest changes the status of one order.
type OrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}
