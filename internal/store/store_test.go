package store

import (
	"context"
	"testing"

	"storefront/internal/model"
	"storefront/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seed = []model.Product{
	{ID: "p1", Name: "Widget", Price: 2500, Quantity: 10},
	{ID: "p2", Name: "Gadget", Price: 4200, Quantity: 5},
}

func newTestStore() (*Store, *storage.MemoryDriver) {
	driver := storage.NewMemoryDriver()
	return New(driver, seed), driver
}

func TestProductsRoundTrip(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	products := []model.Product{
		{ID: "a", Name: "One", Price: 100, Image: "http://img/1", Description: "first", Quantity: 3},
		{ID: "b", Name: "Two", Price: 200.5, Quantity: 0},
	}
	require.NoError(t, s.SaveProducts(ctx, products))

	got := s.Products(ctx)
	assert.Equal(t, products, got)
}

func TestProductsDefaultToSeed(t *testing.T) {
	s, _ := newTestStore()
	got := s.Products(context.Background())
	assert.Equal(t, seed, got)
}

func TestCorruptBlobFallsBackToDefaults(t *testing.T) {
	s, driver := newTestStore()
	ctx := context.Background()

	require.NoError(t, driver.Save(ctx, storage.KeyProducts, []byte("{not json")))
	require.NoError(t, driver.Save(ctx, storage.KeyOrders, []byte("also not json")))
	require.NoError(t, driver.Save(ctx, storage.KeyAdminConfig, []byte("[]garbage")))

	assert.Equal(t, seed, s.Products(ctx))
	assert.Equal(t, []model.Order{}, s.Orders(ctx))
	assert.Equal(t, model.AdminConfig{}, s.AdminConfig(ctx))
}

func TestOrdersDefaultEmpty(t *testing.T) {
	s, _ := newTestStore()
	orders := s.Orders(context.Background())
	require.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestConfigSaveIsIdempotent(t *testing.T) {
	s, driver := newTestStore()
	ctx := context.Background()

	config := model.AdminConfig{ScriptURL: "https://script.example/exec", SheetURL: "https://sheet.example"}
	require.NoError(t, s.SaveAdminConfig(ctx, config))
	first, err := driver.Load(ctx, storage.KeyAdminConfig)
	require.NoError(t, err)

	require.NoError(t, s.SaveAdminConfig(ctx, config))
	second, err := driver.Load(ctx, storage.KeyAdminConfig)
	require.NoError(t, err)

	// Saving the same record twice leaves the stored bytes identical.
	assert.Equal(t, first, second)
}

func TestUpdateProductsWritesThrough(t *testing.T) {
	s, driver := newTestStore()
	ctx := context.Background()

	_, err := s.UpdateProducts(ctx, func(products []model.Product) ([]model.Product, error) {
		return append(products, model.Product{ID: "p3", Name: "New"}), nil
	})
	require.NoError(t, err)

	// The driver has the updated collection before UpdateProducts returned.
	raw, err := driver.Load(ctx, storage.KeyProducts)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"p3"`)
}

func TestUpdateOrdersErrorDoesNotWrite(t *testing.T) {
	s, driver := newTestStore()
	ctx := context.Background()

	_, err := s.UpdateOrders(ctx, func(orders []model.Order) ([]model.Order, error) {
		return nil, assert.AnError
	})
	require.Error(t, err)

	_, err = driver.Load(ctx, storage.KeyOrders)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
