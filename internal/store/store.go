// Package store owns the durable copies of the three storefront collections.
// Every mutation goes through an Update* method, which reads the current
// collection, applies the change and writes the whole collection back before
// returning. In-memory callers never hold state the driver does not.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"storefront/internal/model"
	"storefront/internal/storage"
)

// Store loads and saves the product, order and admin-config collections.
// A corrupt or missing blob never surfaces as an error: reads fall back to
// the documented default for the key (seed catalog, no orders, empty config).
type Store struct {
	mu     sync.Mutex
	driver storage.Driver
	seed   []model.Product
}

// New creates a store over driver. seed is the catalog returned while the
// products key has never been written.
func New(driver storage.Driver, seed []model.Product) *Store {
	return &Store{driver: driver, seed: seed}
}

// Products returns the catalog, or the seed list if nothing usable is stored.
func (s *Store) Products(ctx context.Context) []model.Product {
	var products []model.Product
	if !s.load(ctx, storage.KeyProducts, &products) {
		return append([]model.Product(nil), s.seed...)
	}
	return products
}

// SaveProducts replaces the persisted catalog.
func (s *Store) SaveProducts(ctx context.Context, products []model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, storage.KeyProducts, products)
}

// UpdateProducts applies fn to the current catalog and writes the result
// back, holding the store lock across the read-modify-write cycle.
func (s *Store) UpdateProducts(ctx context.Context, fn func([]model.Product) ([]model.Product, error)) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := fn(s.Products(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, storage.KeyProducts, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Orders returns the order history, newest first. Defaults to empty.
func (s *Store) Orders(ctx context.Context) []model.Order {
	var orders []model.Order
	if !s.load(ctx, storage.KeyOrders, &orders) {
		return []model.Order{}
	}
	return orders
}

// SaveOrders replaces the persisted order history.
func (s *Store) SaveOrders(ctx context.Context, orders []model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, storage.KeyOrders, orders)
}

// UpdateOrders applies fn to the current order history and writes the result
// back under the store lock.
func (s *Store) UpdateOrders(ctx context.Context, fn func([]model.Order) ([]model.Order, error)) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := fn(s.Orders(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, storage.KeyOrders, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// AdminConfig returns the store configuration. Defaults to the zero record.
func (s *Store) AdminConfig(ctx context.Context) model.AdminConfig {
	var config model.AdminConfig
	if !s.load(ctx, storage.KeyAdminConfig, &config) {
		return model.AdminConfig{}
	}
	return config
}

// SaveAdminConfig replaces the whole configuration record.
func (s *Store) SaveAdminConfig(ctx context.Context, config model.AdminConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, storage.KeyAdminConfig, config)
}

// load decodes the blob under key into out, reporting whether a usable value
// was found. Decode failures are logged and treated as absent.
func (s *Store) load(ctx context.Context, key string, out any) bool {
	data, err := s.driver.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("storage read failed, using defaults", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("corrupt collection, using defaults", "key", key, "err", err)
		return false
	}
	return true
}

func (s *Store) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.driver.Save(ctx, key, data); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}
