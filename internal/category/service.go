package category

import (
	"errors"
	"strings"

	"github.com/gosimple/slug"
)

var ErrMultiplePrimary = errors.New("exactly one primary category required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive() ([]Category, error) {
	return s.repo.ListActive()
}

func (s *Service) GetBySlug(sl string) (Category, error) {
	return s.repo.GetBySlug(sl)
}

func (s *Service) Create(c Category) (Category, error) {
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = slug.Make(c.NameEN)
	} else {
		c.Slug = slug.Make(c.Slug)
	}
	c.Active = true
	return s.repo.Create(c)
}

func (s *Service) Update(id int, c Category) (Category, error) {
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = slug.Make(c.NameEN)
	} else {
		c.Slug = slug.Make(c.Slug)
	}
	return s.repo.Update(id, c)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) ListAssignments(productSKU string) ([]ProductCategory, error) {
	return s.repo.ListAssignments(productSKU)
}

// SetAssignments validates that exactly one assignment is primary, then
// replaces the product's category set.
func (s *Service) SetAssignments(productSKU string, assignments []ProductCategory) error {
	primaries := 0
	for i := range assignments {
		assignments[i].ProductSKU = productSKU
		if assignments[i].Primary {
			primaries++
		}
		if _, err := s.repo.GetByID(assignments[i].CategoryID); err != nil {
			return err
		}
	}
	if len(assignments) > 0 && primaries != 1 {
		return ErrMultiplePrimary
	}
	return s.repo.SetAssignments(productSKU, assignments)
}
