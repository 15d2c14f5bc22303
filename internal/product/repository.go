package product

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound  = errors.New("product not found")
	ErrSKUExists = errors.New("sku already exists")
)

// Filter narrows ListActive by a single coarse attribute. Empty fields are
// ignored; matching is exact on the stored value.
type Filter struct {
	Category string
	Supplier string
}

// SearchParams drives the paginated admin/product search.
type SearchParams struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

type Repository interface {
	// ListActive returns active products ordered by title_en ascending,
	// optionally pre-filtered by category or supplier.
	ListActive(f Filter) ([]Product, error)
	GetBySKU(sku string) (Product, error)
	ListFeatured(limit int) ([]Product, error)
	Search(p SearchParams) ([]Product, int, error)
	ListBySKUs(skus []string) ([]Product, error)
	Create(p Product) (Product, error)
	Update(sku string, p Product) (Product, error)
	// Delete soft-deletes by clearing the active flag.
	Delete(sku string) error
	SetFeatured(sku string, featured bool) error
}

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) ListActive(f Filter) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.storage {
		if !p.Active {
			continue
		}
		if f.Category != "" && p.CategoryName() != f.Category {
			continue
		}
		if f.Supplier != "" && p.SupplierName() != f.Supplier {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TitleEN != out[j].TitleEN {
			return out[i].TitleEN < out[j].TitleEN
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}

func (r *InMemoryRepository) GetBySKU(sku string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if strings.EqualFold(p.SKU, sku) {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) ListFeatured(limit int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range r.storage {
		if p.Active && p.Featured {
			out = append(out, p)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Search(params SearchParams) ([]Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(params.Query)
	matched := make([]Product, 0)
	for _, p := range r.storage {
		if !p.Active {
			continue
		}
		if params.Category != "" && p.CategoryName() != params.Category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	start := (params.Page - 1) * params.Limit
	if start < 0 {
		start = 0
	}
	if start >= total {
		return []Product{}, total, nil
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matchesQuery(p Product, q string) bool {
	fields := []string{p.SKU, p.TitleEN, p.DescriptionEN, p.CategoryName(), p.SupplierName()}
	if p.TitleTH != nil {
		fields = append(fields, *p.TitleTH)
	}
	if p.DescriptionTH != nil {
		fields = append(fields, *p.DescriptionTH)
	}
	// users often search without separators ("nsrtw" for "nsrt_w")
	stripped := strings.NewReplacer("_", "", "-", "").Replace(q)
	for _, f := range fields {
		lf := strings.ToLower(f)
		if strings.Contains(lf, q) {
			return true
		}
		if stripped != q && strings.Contains(strings.NewReplacer("_", "", "-", "").Replace(lf), stripped) {
			return true
		}
	}
	return false
}

func (r *InMemoryRepository) ListBySKUs(skus []string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(skus))
	for _, sku := range skus {
		for _, p := range r.storage {
			if strings.EqualFold(p.SKU, sku) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.storage {
		if strings.EqualFold(existing.SKU, p.SKU) {
			return Product{}, ErrSKUExists
		}
	}
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(sku string, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if strings.EqualFold(r.storage[i].SKU, sku) {
			p.SKU = r.storage[i].SKU
			r.storage[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(sku string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if strings.EqualFold(r.storage[i].SKU, sku) {
			r.storage[i].Active = false
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) SetFeatured(sku string, featured bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if strings.EqualFold(r.storage[i].SKU, sku) {
			r.storage[i].Featured = featured
			return nil
		}
	}
	return ErrNotFound
}
