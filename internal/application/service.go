package application

import (
	"context"

	"github.com/placidasia/catalog-backend/internal/cache"
	"github.com/placidasia/catalog-backend/internal/content"
	"github.com/placidasia/catalog-backend/internal/curation"
	"github.com/placidasia/catalog-backend/internal/product"
)

// Catalog is the slice of the product service the application pages need.
type Catalog interface {
	ListActive(f product.Filter) ([]product.Product, error)
	Version() int64
}

type Service struct {
	catalog  Catalog
	engine   *curation.Engine
	listings *cache.Listings
}

func NewService(catalog Catalog, engine *curation.Engine, listings *cache.Listings) *Service {
	return &Service{catalog: catalog, engine: engine, listings: listings}
}

func (s *Service) List() []content.Application {
	return content.Applications
}

// Detail is one application page: the editorial metadata plus its curated
// product grid. The count is user-visible copy ("N products available").
type Detail struct {
	content.Application
	Products []product.Product `json:"products"`
	Count    int               `json:"count"`
}

func (s *Service) Get(ctx context.Context, slug string) (Detail, bool, error) {
	app, ok := content.ApplicationBySlug(slug)
	if !ok {
		return Detail{}, false, nil
	}

	version := s.catalog.Version()
	curated, hit := s.listings.Get(ctx, curation.ContextApplication, slug, version)
	if !hit {
		products, err := s.catalog.ListActive(product.Filter{})
		if err != nil {
			return Detail{}, false, err
		}
		curated = s.engine.Curate(curation.ContextApplication, slug, products)
		s.listings.Set(ctx, curation.ContextApplication, slug, version, curated)
	}
	curated = product.NormalizeMedia(curated)

	return Detail{Application: app, Products: curated, Count: len(curated)}, true, nil
}
