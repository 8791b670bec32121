package catalog

import (
	"context"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

type memoryRepo struct {
	products []domain.Product
	byID     map[string]int
}

// NewMemory builds a repository over a fixed product slice. It is the default
// backend when no catalog database is configured.
func NewMemory(products []domain.Product) Repository {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &memoryRepo{products: products, byID: byID}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.products[i]
	return &p, nil
}
