package product

import "sync/atomic"

type Service struct {
	repo Repository
	// version increments on every write so cached listings built from an
	// older product set can be told apart from fresh ones.
	version atomic.Int64
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Version identifies the current product set. Any write bumps it.
func (s *Service) Version() int64 {
	return s.version.Load()
}

func (s *Service) ListActive(f Filter) ([]Product, error) {
	products, err := s.repo.ListActive(f)
	if err != nil {
		return nil, err
	}
	return NormalizeMedia(products), nil
}

func (s *Service) GetBySKU(sku string) (Product, error) {
	p, err := s.repo.GetBySKU(sku)
	if err != nil {
		return Product{}, err
	}
	normalized := NormalizeMedia([]Product{p})
	return normalized[0], nil
}

func (s *Service) ListFeatured(limit int) ([]Product, error) {
	products, err := s.repo.ListFeatured(limit)
	if err != nil {
		return nil, err
	}
	return NormalizeMedia(products), nil
}

func (s *Service) Search(params SearchParams) ([]Product, int, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}
	products, total, err := s.repo.Search(params)
	if err != nil {
		return nil, 0, err
	}
	return NormalizeMedia(products), total, nil
}

func (s *Service) ListBySKUs(skus []string) ([]Product, error) {
	products, err := s.repo.ListBySKUs(skus)
	if err != nil {
		return nil, err
	}
	return NormalizeMedia(products), nil
}

func (s *Service) Create(p Product) (Product, error) {
	created, err := s.repo.Create(p)
	if err != nil {
		return Product{}, err
	}
	s.version.Add(1)
	return created, nil
}

func (s *Service) Update(sku string, p Product) (Product, error) {
	updated, err := s.repo.Update(sku, p)
	if err != nil {
		return Product{}, err
	}
	s.version.Add(1)
	return updated, nil
}

func (s *Service) Delete(sku string) error {
	if err := s.repo.Delete(sku); err != nil {
		return err
	}
	s.version.Add(1)
	return nil
}

func (s *Service) SetFeatured(sku string, featured bool) error {
	if err := s.repo.SetFeatured(sku, featured); err != nil {
		return err
	}
	s.version.Add(1)
	return nil
}
