package catalog

import (
	"context"
	"strings"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	catalogrepo "github.com/mousa-mostafa/capitone-Furniture/internal/repository/catalog"
)

// Filter holds the three storefront criteria. All predicates are conjunctive.
type Filter struct {
	// Query matches by literal substring against name or description. Empty
	// matches everything.
	Query string
	// MaxPrice, when set, is an inclusive ceiling in base currency units. A
	// ceiling of zero excludes everything priced above zero.
	MaxPrice *int64
	// Pieces, when set, requires an exact piece-count match.
	Pieces *int
}

type Service struct {
	repo catalogrepo.Repository
}

func New(repo catalogrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(products, f), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Apply returns the subset of products matching every filter criterion. It is
// pure: same inputs, same output, no side effects. An empty result is valid.
func Apply(products []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, f Filter) bool {
	if f.Query != "" && !strings.Contains(p.Name, f.Query) && !strings.Contains(p.Description, f.Query) {
		return false
	}
	if f.MaxPrice != nil && p.PriceEGP > *f.MaxPrice {
		return false
	}
	if f.Pieces != nil && p.PiecesCount != *f.Pieces {
		return false
	}
	return true
}
