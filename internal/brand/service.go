package brand

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

func (s *Service) List() []content.Brand {
	out := make([]content.Brand, 0, len(content.Brands))
	for _, slug := range brandOrder {
		out = append(out, content.Brands[slug])
	}
	return out
}

// brandOrder keeps the brand index stable instead of map-ordered.
var brandOrder = []string{
	"norsonic",
	"soundtec",
	"spektra-dresden",
	"placid-instruments",
	"aps-dynamics",
	"profound",
	"convergence-instruments",
	"bedrock-elite",
	"soundplan",
	"sarooma",
	"dbsea",
	"femtools",
	"soundinsight",
	"sound-of-numbers",
	"spotnoise",
}

// Detail is one brand page.
type Detail struct {
	Slug              string            `json:"slug"`
	Supplier          string            `json:"supplier"`
	Info              *content.Brand    `json:"info,omitempty"`
	Products          []product.Product `json:"products"`
	Count             int               `json:"count"`
	CategoryBreakdown map[string]int    `json:"category_breakdown"`
}

// Get builds a brand page. found is false when the supplier has no active
// products, which the handler renders as 404.
func (s *Service) Get(ctx context.Context, slug string) (Detail, bool, error) {
	supplier := content.SupplierForSlug(slug)

	version := s.catalog.Version()
	curated, hit := s.listings.Get(ctx, curation.ContextBrand, slug, version)
	if !hit {
		products, err := s.catalog.ListActive(product.Filter{Supplier: supplier})
		if err != nil {
			return Detail{}, false, err
		}
		curated = s.engine.Curate(curation.ContextBrand, slug, products)
		s.listings.Set(ctx, curation.ContextBrand, slug, version, curated)
	}
	if len(curated) == 0 {
		return Detail{}, false, nil
	}
	curated = product.NormalizeMedia(curated)

	breakdown := map[string]int{}
	for _, p := range curated {
		name := p.CategoryName()
		if name == "" {
			name = "Uncategorized"
		}
		breakdown[name]++
	}

	detail := Detail{
		Slug:              slug,
		Supplier:          supplier,
		Products:          curated,
		Count:             len(curated),
		CategoryBreakdown: breakdown,
	}
	if info, ok := content.Brands[slug]; ok {
		detail.Info = &info
	}
	return detail, true, nil
}
