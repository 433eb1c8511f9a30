package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"pricewatch/internal/domain"
)

type PriceHistoryStore struct {
	db *sqlx.DB
}

func NewPriceHistoryStore(db *sqlx.DB) *PriceHistoryStore {
	return &PriceHistoryStore{db: db}
}

// Append records one price observation. History rows are immutable facts:
// always inserted, never updated.
func (s *PriceHistoryStore) Append(ctx context.Context, productID int64, obs domain.PriceObservation) error {
	query := `
		INSERT INTO price_history (
			product_id, price, original_price, price_per_unit, discount_type, observed_at
		) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		productID,
		obs.Price,
		obs.OriginalPrice,
		obs.PricePerUnit,
		obs.DiscountType,
		obs.ObservedAt,
	)
	return err
}
