package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pricewatch/internal/domain"
)

type ProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db: db}
}

// Upsert inserts or overwrites the product matched on
// (supermarket_id, product_id), stamping last_updated on overwrite. The
// category row is created on demand inside the same executor so the whole
// write stays inside the caller's transaction.
func (s *ProductStore) Upsert(ctx context.Context, rec *domain.ProductRecord) (int64, domain.UpsertOutcome, error) {
	exec := GetExecutor(ctx, s.db)

	smID, err := supermarketID(ctx, exec, rec.SupermarketCode)
	if err != nil {
		return 0, 0, err
	}

	catID, err := getOrCreateCategory(ctx, exec, smID, rec.Category)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve category: %w", err)
	}

	query := `
		INSERT INTO products (
			supermarket_id, product_id, name, category_id, price, unit_amount,
			unit_type, price_per_unit, original_price, discount_type,
			discount_start_date, discount_end_date, search_tags, image_url
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (supermarket_id, product_id) DO UPDATE SET
			name = EXCLUDED.name,
			category_id = EXCLUDED.category_id,
			price = EXCLUDED.price,
			unit_amount = EXCLUDED.unit_amount,
			unit_type = EXCLUDED.unit_type,
			price_per_unit = EXCLUDED.price_per_unit,
			original_price = EXCLUDED.original_price,
			discount_type = EXCLUDED.discount_type,
			discount_start_date = EXCLUDED.discount_start_date,
			discount_end_date = EXCLUDED.discount_end_date,
			search_tags = EXCLUDED.search_tags,
			image_url = EXCLUDED.image_url,
			last_updated = NOW()
		RETURNING id, (xmax = 0) AS inserted`

	var (
		id       int64
		inserted bool
	)
	err = exec.QueryRowxContext(ctx, query,
		smID,
		rec.ProductID,
		rec.Name,
		catID,
		rec.Price,
		rec.UnitAmount,
		rec.UnitType,
		rec.PricePerUnit,
		rec.OriginalPrice,
		rec.DiscountType,
		rec.DiscountStart,
		rec.DiscountEnd,
		rec.SearchTags,
		rec.ImageURL,
	).Scan(&id, &inserted)
	if err != nil {
		return 0, 0, err
	}

	rec.ID = id
	if inserted {
		return id, domain.OutcomeInserted, nil
	}
	return id, domain.OutcomeUpdated, nil
}
