package catalog

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=catalog_mock.go -package=catalog

// Repository reads the locally mirrored catalog table. The mirror is
// refreshed outside this process and is read-only here.
type Repository interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// Fetcher performs a live per-SKU lookup against the upstream catalog.
type Fetcher interface {
	FetchProduct(ctx context.Context, sku string) (*Product, error)
}

type Service struct {
	repo Repository
	live Fetcher
}

func NewService(repo Repository, live Fetcher) *Service {
	return &Service{repo: repo, live: live}
}

// List serves the bulk read from the mirror, decoding the stored category
// encoding and image templates on the way out.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		p.Category = decodeCategoryPath(p.Category)
		p.Image = RenderImageURL(p.Image)
	}

	return products, nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(raw))

	for _, r := range raw {
		decoded := decodeCategoryPath(r)
		if decoded == "" {
			continue
		}

		categories = append(categories, decoded)
	}

	return categories, nil
}

// Lookup bypasses the mirror and asks upstream directly: per-item reads
// trade latency for freshness, the mirror is only refreshed periodically.
func (s *Service) Lookup(ctx context.Context, sku string) (*Product, error) {
	return s.live.FetchProduct(ctx, sku)
}
