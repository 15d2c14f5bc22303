package inquiry

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("inquiry not found")

type Repository interface {
	Create(inq Inquiry) (Inquiry, error)
	// List returns all inquiries, newest first.
	List() ([]Inquiry, error)
	GetByID(id string) (Inquiry, error)
	UpdateStatus(id, status, updatedAt string) (Inquiry, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Inquiry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{storage: make([]Inquiry, 0)}
}

func (r *InMemoryRepository) Create(inq Inquiry) (Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.storage = append(r.storage, inq)
	return inq, nil
}

func (r *InMemoryRepository) List() ([]Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Inquiry, 0, len(r.storage))
	for i := len(r.storage) - 1; i >= 0; i-- {
		out = append(out, r.storage[i])
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inq := range r.storage {
		if inq.ID == id {
			return inq, nil
		}
	}
	return Inquiry{}, ErrNotFound
}

func (r *InMemoryRepository) UpdateStatus(id, status, updatedAt string) (Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, inq := range r.storage {
		if inq.ID == id {
			inq.Status = status
			inq.UpdatedAt = updatedAt
			r.storage[i] = inq
			return inq, nil
		}
	}
	return Inquiry{}, ErrNotFound
}
