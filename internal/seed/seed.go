// Package seed holds the factory's fixed salon catalog and can load it into
// Postgres for deployments that serve the catalog from a database.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

// Catalog returns the factory's product list. The API treats this data as
// immutable; every call returns a fresh slice so callers cannot corrupt it.
func Catalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "صالون الملكي الكلاسيكي",
			PriceEGP:    85000,
			Rating:      9.5,
			Images:      []string{"https://picsum.photos/seed/salon1/800/600", "https://picsum.photos/seed/salon1-2/800/600"},
			Description: "صالون فاخر من الخشب الزان الأحمر الروماني بنقوش يدوية.",
			Features:    []string{"خشب زان أحمر", "ضمان 10 سنوات"},
			Colors:      []string{"ذهبي", "نبيتي"},
			WoodPaints:  []string{"ذهبي"},
			PiecesCount: 5,
		},
		{
			ID:          "2",
			Name:        "صالون مودرن جولد",
			PriceEGP:    62000,
			Rating:      8.8,
			Images:      []string{"https://picsum.photos/seed/salon2/800/600", "https://picsum.photos/seed/salon2-2/800/600"},
			Description: "تصميم عصري يجمع بين البساطة والفخامة.",
			Features:    []string{"إسفنج سوبر سوفت"},
			Colors:      []string{"رمادي", "أبيض"},
			WoodPaints:  []string{"شامبين"},
			PiecesCount: 6,
		},
		{
			ID:          "3",
			Name:        "صالون القصر الدمياطي",
			PriceEGP:    110000,
			Rating:      9.9,
			Images:      []string{"https://picsum.photos/seed/salon3/800/600", "https://picsum.photos/seed/salon3-2/800/600"},
			Description: "أرقى أنواع الصالونات الدمياطية المحفورة يدوياً.",
			Features:    []string{"حفر يدوي بارز"},
			Colors:      []string{"بيج"},
			WoodPaints:  []string{"بني مطعم بذهب"},
			PiecesCount: 7,
		},
	}
}

// Apply upserts the fixed catalog into Postgres. It is idempotent via
// ON CONFLICT, so re-running it against an already seeded database is safe.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range Catalog() {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, description, price_egp, rating, images, features, colors, wood_paints, pieces_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_egp = EXCLUDED.price_egp,
    rating = EXCLUDED.rating,
    images = EXCLUDED.images,
    features = EXCLUDED.features,
    colors = EXCLUDED.colors,
    wood_paints = EXCLUDED.wood_paints,
    pieces_count = EXCLUDED.pieces_count
`
	_, err := pool.Exec(ctx, q,
		p.ID,
		p.Name,
		p.Description,
		p.PriceEGP,
		p.Rating,
		p.Images,
		p.Features,
		p.Colors,
		p.WoodPaints,
		p.PiecesCount,
	)
	return err
}
