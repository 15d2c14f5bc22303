package category

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound   = errors.New("category not found")
	ErrSlugExists = errors.New("category slug already exists")
)

type Repository interface {
	// ListActive returns active categories ordered by name_en.
	ListActive() ([]Category, error)
	GetBySlug(slug string) (Category, error)
	GetByID(id int) (Category, error)
	Create(c Category) (Category, error)
	Update(id int, c Category) (Category, error)
	Delete(id int) error
	// Assignments for one product; setting them replaces the previous set.
	ListAssignments(productSKU string) ([]ProductCategory, error)
	SetAssignments(productSKU string, assignments []ProductCategory) error
}

type InMemoryRepository struct {
	mu          sync.RWMutex
	storage     []Category
	assignments map[string][]ProductCategory
	nextID      int
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{
		storage:     append([]Category{}, seed...),
		assignments: map[string][]ProductCategory{},
		nextID:      1,
	}
	for _, c := range seed {
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) ListActive() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, 0)
	for _, c := range r.storage {
		if c.Active {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NameEN < out[j].NameEN })
	return out, nil
}

func (r *InMemoryRepository) GetBySlug(slug string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.storage {
		if strings.EqualFold(c.Slug, slug) {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) GetByID(id int) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.storage {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Create(c Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.storage {
		if strings.EqualFold(existing.Slug, c.Slug) {
			return Category{}, ErrSlugExists
		}
	}
	c.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, c)
	return c, nil
}

func (r *InMemoryRepository) Update(id int, c Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			c.ID = id
			r.storage[i] = c
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Active = false
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) ListAssignments(productSKU string) ([]ProductCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]ProductCategory{}, r.assignments[strings.ToLower(productSKU)]...)
	return out, nil
}

func (r *InMemoryRepository) SetAssignments(productSKU string, assignments []ProductCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments[strings.ToLower(productSKU)] = append([]ProductCategory{}, assignments...)
	return nil
}
