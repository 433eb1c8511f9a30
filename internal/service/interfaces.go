package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"pricewatch/internal/domain"
)

// ProductStore owns the canonical product rows keyed by
// (supermarket, product_id).
type ProductStore interface {
	Upsert(ctx context.Context, rec *domain.ProductRecord) (int64, domain.UpsertOutcome, error)
}

// PriceHistoryStore owns the append-only observation log.
type PriceHistoryStore interface {
	Append(ctx context.Context, productID int64, obs domain.PriceObservation) error
}

// SessionStore owns scraping session rows. Complete and Fail are valid
// exactly once per session.
type SessionStore interface {
	Begin(ctx context.Context, supermarketCode string) (int64, error)
	Complete(ctx context.Context, sessionID int64, productsScraped int) error
	Fail(ctx context.Context, sessionID int64, errorMessage string) error
}

// SupermarketStore guarantees the retailer row exists before a run.
type SupermarketStore interface {
	Ensure(ctx context.Context, code, name, baseURL string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OfferPublisher emits discounted records to downstream consumers.
type OfferPublisher interface {
	PublishOffer(ctx context.Context, rec *domain.ProductRecord) error
	Close() error
}
