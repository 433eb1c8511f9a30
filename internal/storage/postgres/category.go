package postgres

import (
	"context"

	"github.com/gosimple/slug"
	"github.com/jmoiron/sqlx"
)

// getOrCreateCategory resolves a retailer-scoped category to its row id,
// creating it on first sight. Uniqueness is on (supermarket_id, slug).
func getOrCreateCategory(ctx context.Context, exec sqlx.ExtContext, supermarketID int64, name string) (int64, error) {
	query := `
		INSERT INTO categories (supermarket_id, name, slug)
		VALUES ($1, $2, $3)
		ON CONFLICT (supermarket_id, slug) DO UPDATE SET
			name = EXCLUDED.name
		RETURNING id`

	var id int64
	err := exec.QueryRowxContext(ctx, query, supermarketID, name, slug.Make(name)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
