package services

import (
	"context"

	"github.com/ekuzmina/shopfront/internal/entitystore"
	"github.com/ekuzmina/shopfront/internal/fixtures"
	"github.com/ekuzmina/shopfront/internal/gateway"
	"github.com/ekuzmina/shopfront/internal/kv"
	"github.com/ekuzmina/shopfront/internal/latency"
	"github.com/ekuzmina/shopfront/internal/logging"
	"github.com/ekuzmina/shopfront/internal/models"
	"github.com/ekuzmina/shopfront/internal/reactive"
)

// ProductsStorageKey is the durable key the product catalog persists under.
const ProductsStorageKey = "products_data"

// ProductService is the mock product catalog.
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, bool, error)
	Create(ctx context.Context, req models.CreateProductRequest) (models.Product, error)
	Update(ctx context.Context, id string, req models.UpdateProductRequest) (models.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]models.Product, error)

	// ByCategory returns the products whose category matches exactly.
	ByCategory(ctx context.Context, category string) ([]models.Product, error)

	Collection() reactive.ReadOnly[[]models.Product]
}

type productService struct {
	store   *entitystore.Store[models.Product]
	gateway gateway.Gateway
}

// NewProductService builds the product catalog over the given durable
// medium. sleeper may be nil to use wall-clock latency.
func NewProductService(durable *kv.Durable, gw gateway.Gateway, sleeper latency.Sleeper, log logging.Logger) ProductService {
	cfg := entitystore.Config[models.Product]{
		Name:       "products",
		StorageKey: ProductsStorageKey,
		Seed:       fixtures.Products,
		ID:         func(p models.Product) string { return p.ID },
		AssignID:   func(p *models.Product, id string) { p.ID = id },
		SearchText: func(p models.Product) []string {
			return []string{p.Title, p.Description, p.Category}
		},
		Sleeper: sleeper,
	}
	return &productService{
		store:   entitystore.New(cfg, durable, log),
		gateway: gw,
	}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	// In production: s.gateway.Get(ctx, "/products", nil, &products)
	return s.store.List(ctx)
}

func (s *productService) GetByID(ctx context.Context, id string) (models.Product, bool, error) {
	return s.store.GetByID(ctx, id)
}

// Create stores the new product with its rating forced to zero; ratings
// are recomputed by the catalog, never supplied by callers.
func (s *productService) Create(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	product := models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Stock:       req.Stock,
		Rating:      0,
	}
	return s.store.Create(ctx, product)
}

func (s *productService) Update(ctx context.Context, id string, req models.UpdateProductRequest) (models.Product, error) {
	return s.store.Update(ctx, id, func(p models.Product) models.Product {
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		return p
	})
}

func (s *productService) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}

func (s *productService) Search(ctx context.Context, query string) ([]models.Product, error) {
	return s.store.Search(ctx, query)
}

func (s *productService) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.store.Filter(ctx, func(p models.Product) bool {
		return p.Category == category
	})
}

func (s *productService) Collection() reactive.ReadOnly[[]models.Product] {
	return s.store.Collection()
}
