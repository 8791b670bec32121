package catalog

import (
	"context"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

// Repository provides read-only access to the product catalog. The catalog is
// fixed for the lifetime of the process; there is no write path.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
