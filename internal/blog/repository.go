package blog

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound   = errors.New("blog post not found")
	ErrSlugExists = errors.New("slug already exists")
)

type Repository interface {
	// ListPublished returns published posts, newest publication first.
	// category narrows the result when non-empty.
	ListPublished(category string) ([]Post, error)
	// ListAll returns every post including drafts, newest created first.
	ListAll() ([]Post, error)
	GetBySlug(slug string) (Post, error)
	GetByID(id int) (Post, error)
	Create(p Post) (Post, error)
	Update(id int, p Post) (Post, error)
	Delete(id int) error
	SetPublished(id int, published bool, publishedAt *string) (Post, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	posts  []Post
	nextID int
}

func NewInMemoryRepository(seed []Post) *InMemoryRepository {
	repo := &InMemoryRepository{posts: make([]Post, 0, len(seed))}

	maxID := 0
	for _, p := range seed {
		repo.posts = append(repo.posts, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) ListPublished(category string) ([]Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Post, 0)
	for _, p := range r.posts {
		if !p.Published {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return publishedAt(out[i]) > publishedAt(out[j])
	})
	return out, nil
}

func (r *InMemoryRepository) ListAll() ([]Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Post, len(r.posts))
	copy(out, r.posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (r *InMemoryRepository) GetBySlug(slug string) (Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if strings.EqualFold(p.Slug, slug) {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

func (r *InMemoryRepository) GetByID(id int) (Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Post) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.posts {
		if strings.EqualFold(existing.Slug, p.Slug) {
			return Post{}, ErrSlugExists
		}
	}
	p.ID = r.nextID
	r.nextID++
	r.posts = append(r.posts, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, update Post) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == id {
			update.ID = id
			update.CreatedAt = p.CreatedAt
			r.posts[i] = update
			return update, nil
		}
	}
	return Post{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) SetPublished(id int, published bool, publishedAt *string) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.ID == id {
			p.Published = published
			p.PublishedAt = publishedAt
			r.posts[i] = p
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

func publishedAt(p Post) string {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return ""
}
