package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"storefront/internal/model"
	"storefront/internal/store"
)

var (
	// ErrOrderNotFound is returned for status changes on unknown order ids.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned when a status outside the closed
	// pending/delivered/cancelled set would be written.
	ErrInvalidStatus = errors.New("invalid order status")
)

// OrderFilters narrows the admin order listing. Query matches the customer
// name (case-insensitive substring) or phone number; Status and Wilaya are
// exact matches. Empty fields match everything.
type OrderFilters struct {
	Query  string
	Status model.OrderStatus
	Wilaya string
}

// OrderService manages the order history. Orders are created once by the
// submission flow and never deleted; status is the only mutable field.
type OrderService struct {
	store *store.Store
}

// NewOrderService creates an order service over the persisted store.
func NewOrderService(store *store.Store) *OrderService {
	return &OrderService{store: store}
}

// List returns the order history, newest first, narrowed by filters.
func (s *OrderService) List(ctx context.Context, filters OrderFilters) []model.Order {
	orders := s.store.Orders(ctx)
	filtered := []model.Order{}
	for _, o := range orders {
		if !matchesFilters(o, filters) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// Prepend adds a freshly accepted order to the front of the history and
// writes the collection through.
func (s *OrderService) Prepend(ctx context.Context, order model.Order) error {
	_, err := s.store.UpdateOrders(ctx, func(orders []model.Order) ([]model.Order, error) {
		return append([]model.Order{order}, orders...), nil
	})
	if err != nil {
		return err
	}

	slog.Info("order recorded", "id", order.ID, "product", order.Product.Name)
	return nil
}

// UpdateStatus sets the status of exactly one order, leaving every other
// field untouched. Only the closed status set is accepted.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var updated model.Order
	_, err := s.store.UpdateOrders(ctx, func(orders []model.Order) ([]model.Order, error) {
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
				updated = orders[i]
				return orders, nil
			}
		}
		return nil, ErrOrderNotFound
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order status changed", "id", id, "status", status)
	return &updated, nil
}

func matchesFilters(o model.Order, f OrderFilters) bool {
	if f.Query != "" {
		name := strings.Contains(strings.ToLower(o.Customer.Name), strings.ToLower(f.Query))
		phone := strings.Contains(o.Customer.Phone, f.Query)
		if !name && !phone {
			return false
		}
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Wilaya != "" && o.Customer.Wilaya != f.Wilaya {
		return false
	}
	return true
}
