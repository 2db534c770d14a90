package service

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/model"
	"storefront/internal/route"
	"storefront/internal/store"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned for lookups and mutations on unknown ids.
var ErrProductNotFound = errors.New("product not found")

// ProductService manages the catalog. Reads come straight from the persisted
// store; every mutation is an upsert or removal of the whole collection,
// written through before the call returns.
type ProductService struct {
	store *store.Store
}

// NewProductService creates a product service over the persisted store.
func NewProductService(store *store.Store) *ProductService {
	return &ProductService{store: store}
}

// List returns the catalog, filtered by a case-insensitive substring match
// on the product name when query is non-empty.
func (s *ProductService) List(ctx context.Context, query string) []model.Product {
	return route.FilterByName(s.store.Products(ctx), query)
}

// Get returns the product with the given id.
func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	for _, p := range s.store.Products(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Create adds a catalog entry under a freshly generated id.
func (s *ProductService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	product := model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Quantity:    req.Quantity,
	}

	_, err := s.store.UpdateProducts(ctx, func(products []model.Product) ([]model.Product, error) {
		return append(products, product), nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("product created", "id", product.ID, "name", product.Name)
	return &product, nil
}

// Update replaces the catalog entry with the given id, keeping the id.
func (s *ProductService) Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	updated := model.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Quantity:    req.Quantity,
	}

	_, err := s.store.UpdateProducts(ctx, func(products []model.Product) ([]model.Product, error) {
		for i := range products {
			if products[i].ID == id {
				products[i] = updated
				return products, nil
			}
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the catalog entry with the given id. Orders that reference
// the product keep their snapshot; no referential check is made.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	_, err := s.store.UpdateProducts(ctx, func(products []model.Product) ([]model.Product, error) {
		for i := range products {
			if products[i].ID == id {
				return append(products[:i], products[i+1:]...), nil
			}
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return err
	}

	slog.Info("product deleted", "id", id)
	return nil
}
