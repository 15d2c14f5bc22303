package guide

import (
	"context"

	"github.com/placidasia/catalog-backend/internal/cache"
	"github.com/placidasia/catalog-backend/internal/content"
	"github.com/placidasia/catalog-backend/internal/curation"
	"github.com/placidasia/catalog-backend/internal/product"
)

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

func (s *Service) List() []content.Guide {
	return content.Guides
}

// Detail is one guide article plus the related-product strip (at most six
// products matched by the guide's keyword list).
type Detail struct {
	content.Guide
	RelatedProducts []product.Product `json:"related_products"`
}

func (s *Service) Get(ctx context.Context, slug string) (Detail, bool, error) {
	g, ok := content.GuideBySlug(slug)
	if !ok {
		return Detail{}, false, nil
	}

	version := s.catalog.Version()
	related, hit := s.listings.Get(ctx, curation.ContextGuide, slug, version)
	if !hit {
		products, err := s.catalog.ListActive(product.Filter{})
		if err != nil {
			return Detail{}, false, err
		}
		related = s.engine.Curate(curation.ContextGuide, slug, products)
		s.listings.Set(ctx, curation.ContextGuide, slug, version, related)
	}
	related = product.NormalizeMedia(related)

	return Detail{Guide: g, RelatedProducts: related}, true, nil
}
