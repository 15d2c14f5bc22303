package blog

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPublished(category string) ([]Post, error) {
	return s.repo.ListPublished(category)
}

func (s *Service) ListAll() ([]Post, error) {
	return s.repo.ListAll()
}

// GetPublished is the public lookup: drafts behave as if they do not
// exist.
func (s *Service) GetPublished(postSlug string) (Post, error) {
	post, err := s.repo.GetBySlug(postSlug)
	if err != nil {
		return Post{}, err
	}
	if !post.Published {
		return Post{}, ErrNotFound
	}
	return post, nil
}

func (s *Service) GetByID(id int) (Post, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Post) (Post, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = slug.Make(p.TitleEN)
	} else {
		p.Slug = slug.Make(p.Slug)
	}
	if p.Author == "" {
		p.Author = "Placid Asia"
	}
	if p.ReadingTime <= 0 {
		p.ReadingTime = 5
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Published {
		p.PublishedAt = &now
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Post) (Post, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Post{}, err
	}

	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = existing.Slug
	} else {
		p.Slug = slug.Make(p.Slug)
	}
	if p.Tags == nil {
		p.Tags = existing.Tags
	}
	p.Published = existing.Published
	p.PublishedAt = existing.PublishedAt
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// TogglePublish flips the published flag; publishing stamps the
// publication time, unpublishing clears it.
func (s *Service) TogglePublish(id int) (Post, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Post{}, err
	}

	if existing.Published {
		return s.repo.SetPublished(id, false, nil)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.SetPublished(id, true, &now)
}
