package newsletter

import (
	"errors"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("subscriber not found")

type Repository interface {
	GetByEmail(email string) (Subscriber, error)
	Create(sub Subscriber) (Subscriber, error)
	Update(id int, sub Subscriber) (Subscriber, error)
	// List returns subscribers newest first. active filters when non-nil.
	List(active *bool) ([]Subscriber, error)
}

type InMemoryRepository struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	nextID      int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{subscribers: make([]Subscriber, 0), nextID: 1}
}

func (r *InMemoryRepository) GetByEmail(email string) (Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sub := range r.subscribers {
		if strings.EqualFold(sub.Email, email) {
			return sub, nil
		}
	}
	return Subscriber{}, ErrNotFound
}

func (r *InMemoryRepository) Create(sub Subscriber) (Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub.ID = r.nextID
	r.nextID++
	r.subscribers = append(r.subscribers, sub)
	return sub, nil
}

func (r *InMemoryRepository) Update(id int, sub Subscriber) (Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.subscribers {
		if existing.ID == id {
			sub.ID = id
			r.subscribers[i] = sub
			return sub, nil
		}
	}
	return Subscriber{}, ErrNotFound
}

func (r *InMemoryRepository) List(active *bool) ([]Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Subscriber, 0, len(r.subscribers))
	for i := len(r.subscribers) - 1; i >= 0; i-- {
		sub := r.subscribers[i]
		if active != nil && sub.Active != *active {
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}
