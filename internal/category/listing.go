package category

import (
	"context"
	"strings"

	"github.com/placidasia/catalog-backend/internal/cache"
	"github.com/placidasia/catalog-backend/internal/curation"
	"github.com/placidasia/catalog-backend/internal/product"
)

// Catalog is the slice of the product service the category pages need.
type Catalog interface {
	ListActive(f product.Filter) ([]product.Product, error)
	Version() int64
}

// ListingService builds the product grid of a category page: products scoped
// to the category, then run through the per-category curation rule.
type ListingService struct {
	categories *Service
	catalog    Catalog
	engine     *curation.Engine
	listings   *cache.Listings
}

func NewListingService(categories *Service, catalog Catalog, engine *curation.Engine, listings *cache.Listings) *ListingService {
	return &ListingService{categories: categories, catalog: catalog, engine: engine, listings: listings}
}

// Listing is one category page.
type Listing struct {
	Category Category          `json:"category"`
	Products []product.Product `json:"products"`
	Count    int               `json:"count"`
}

func (s *ListingService) Get(ctx context.Context, slug string) (Listing, bool, error) {
	cat, err := s.categories.GetBySlug(slug)
	if err != nil {
		if err == ErrNotFound {
			return Listing{}, false, nil
		}
		return Listing{}, false, err
	}

	key := strings.ToLower(cat.Slug)
	version := s.catalog.Version()
	curated, hit := s.listings.Get(ctx, curation.ContextCategory, key, version)
	if !hit {
		products, err := s.catalog.ListActive(product.Filter{Category: cat.NameEN})
		if err != nil {
			return Listing{}, false, err
		}
		curated = s.engine.Curate(curation.ContextCategory, key, products)
		s.listings.Set(ctx, curation.ContextCategory, key, version, curated)
	}
	curated = product.NormalizeMedia(curated)

	return Listing{Category: cat, Products: curated, Count: len(curated)}, true, nil
}
