package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	logx "github.com/mousa-mostafa/capitone-Furniture/pkg/logger"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres reads the catalog from Postgres. Used when the deployment keeps
// the product list in a database instead of the built-in seed.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const selectColumns = `id, name, COALESCE(description, ''), price_egp, rating, images, features, colors, wood_paints, pieces_count`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+selectColumns+` FROM products ORDER BY id`)
	if err != nil {
		logx.Error().Err(err).Msg("catalog repo: list query failed")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		logx.Error().Err(err).Msg("catalog repo: list rows failed")
		return nil, err
	}
	logx.Debug().Int("count", len(result)).Msg("catalog repo: listed products")
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		logx.Error().Err(err).Str("id", id).Msg("catalog repo: get failed")
		return nil, err
	}
	return &p, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.PriceEGP,
		&p.Rating,
		&p.Images,
		&p.Features,
		&p.Colors,
		&p.WoodPaints,
		&p.PiecesCount,
	)
	return p, err
}
