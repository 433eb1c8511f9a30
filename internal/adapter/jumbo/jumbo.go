// Package jumbo implements the Jumbo adapters on top of the mobile search
// API. Prices come back in cents.
package jumbo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pricewatch/internal/adapter"
	"pricewatch/internal/domain"
)

const (
	SupermarketCode = "JUMBO"
	SupermarketName = "Jumbo"

	defaultBaseURL  = "https://mobileapi.jumbo.com"
	searchPath      = "/v17/search"
	defaultPageSize = 30
)

// Config holds Jumbo adapter configuration.
type Config struct {
	BaseURL  string
	PageSize int
	Client   adapter.ClientConfig
}

// Adapter fetches Jumbo listings. The offers variant filters the search to
// promoted products.
type Adapter struct {
	client         *adapter.Client
	baseURL        string
	pageSize       int
	promotionsOnly bool
	logger         *slog.Logger
}

// NewCatalog returns the full-catalog variant.
func NewCatalog(cfg Config, logger *slog.Logger) *Adapter {
	return newAdapter(cfg, false, logger)
}

// NewOffers returns the offers-only variant.
func NewOffers(cfg Config, logger *slog.Logger) *Adapter {
	return newAdapter(cfg, true, logger)
}

func newAdapter(cfg Config, promotionsOnly bool, logger *slog.Logger) *Adapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	return &Adapter{
		client:         adapter.NewClient(cfg.Client, logger.With("supermarket", SupermarketCode)),
		baseURL:        baseURL,
		pageSize:       pageSize,
		promotionsOnly: promotionsOnly,
		logger:         logger.With("supermarket", SupermarketCode),
	}
}

func (a *Adapter) Code() string    { return SupermarketCode }
func (a *Adapter) Name() string    { return SupermarketName }
func (a *Adapter) BaseURL() string { return a.baseURL }

func (a *Adapter) Listings(ctx context.Context) (adapter.Stream, error) {
	return adapter.NewPagedStream(a.fetchPage), nil
}

func (a *Adapter) fetchPage(ctx context.Context, page int) ([]domain.RawListing, bool, error) {
	offset := page * a.pageSize
	url := fmt.Sprintf("%s%s?offset=%d&limit=%d", a.baseURL, searchPath, offset, a.pageSize)
	if a.promotionsOnly {
		url += "&filters=promotion"
	}

	var resp searchResponse
	if err := a.client.GetJSON(ctx, url, &resp); err != nil {
		return nil, false, fmt.Errorf("fetch page %d: %w", page, err)
	}

	listings := make([]domain.RawListing, 0, len(resp.Products.Data))
	for _, p := range resp.Products.Data {
		listings = append(listings, a.transform(p))
	}

	a.logger.Debug("fetched page",
		"page", page,
		"listings", len(listings),
		"total", resp.Products.Total,
	)

	return listings, offset+len(listings) < resp.Products.Total, nil
}

func (a *Adapter) transform(p apiProduct) domain.RawListing {
	listing := domain.RawListing{
		ProductID:  p.ID,
		Name:       p.Title,
		Category:   p.TopLevelCategory,
		Price:      cents(p.Prices.Price.Amount),
		UnitAmount: p.Quantity,
	}

	if p.Prices.PromotionalPrice != nil {
		original := listing.Price
		listing.Price = cents(p.Prices.PromotionalPrice.Amount)
		listing.OriginalPrice = &original
	}

	if p.ImageInfo != nil && p.ImageInfo.Primary.URL != "" {
		listing.ImageURL = &p.ImageInfo.Primary.URL
	}

	if p.Promotion != nil {
		if len(p.Promotion.Tags) > 0 && p.Promotion.Tags[0].Text != "" {
			listing.DiscountType = &p.Promotion.Tags[0].Text
		}
		listing.DiscountStart = parseDate(p.Promotion.FromDate)
		listing.DiscountEnd = parseDate(p.Promotion.ToDate)
	}

	return listing
}

func cents(amount int64) float64 {
	return float64(amount) / 100
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
