// Package ah implements the Albert Heijn adapters on top of the public
// product search API.
package ah

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pricewatch/internal/adapter"
	"pricewatch/internal/domain"
)

const (
	SupermarketCode = "AH"
	SupermarketName = "Albert Heijn"

	defaultBaseURL  = "https://www.ah.nl"
	searchPath      = "/zoeken/api/products/search"
	defaultPageSize = 36
)

// Config holds AH adapter configuration.
type Config struct {
	BaseURL  string
	PageSize int
	Client   adapter.ClientConfig
}

// Adapter fetches AH listings. The offers variant restricts the search to
// the bonus segment; everything else is shared.
type Adapter struct {
	client    *adapter.Client
	baseURL   string
	pageSize  int
	bonusOnly bool
	logger    *slog.Logger
}

// NewCatalog returns the full-catalog variant.
func NewCatalog(cfg Config, logger *slog.Logger) *Adapter {
	return newAdapter(cfg, false, logger)
}

// NewOffers returns the offers-only variant.
func NewOffers(cfg Config, logger *slog.Logger) *Adapter {
	return newAdapter(cfg, true, logger)
}

func newAdapter(cfg Config, bonusOnly bool, logger *slog.Logger) *Adapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	return &Adapter{
		client:    adapter.NewClient(cfg.Client, logger.With("supermarket", SupermarketCode)),
		baseURL:   baseURL,
		pageSize:  pageSize,
		bonusOnly: bonusOnly,
		logger:    logger.With("supermarket", SupermarketCode),
	}
}

func (a *Adapter) Code() string    { return SupermarketCode }
func (a *Adapter) Name() string    { return SupermarketName }
func (a *Adapter) BaseURL() string { return a.baseURL }

func (a *Adapter) Listings(ctx context.Context) (adapter.Stream, error) {
	return adapter.NewPagedStream(a.fetchPage), nil
}

func (a *Adapter) fetchPage(ctx context.Context, page int) ([]domain.RawListing, bool, error) {
	url := fmt.Sprintf("%s%s?page=%d&size=%d", a.baseURL, searchPath, page, a.pageSize)
	if a.bonusOnly {
		url += "&bonus=true"
	}

	var resp searchResponse
	if err := a.client.GetJSON(ctx, url, &resp); err != nil {
		return nil, false, fmt.Errorf("fetch page %d: %w", page, err)
	}

	var listings []domain.RawListing
	for _, c := range resp.Cards {
		for _, p := range c.Products {
			listings = append(listings, a.transform(p))
		}
	}

	a.logger.Debug("fetched page",
		"page", page,
		"listings", len(listings),
		"total_pages", resp.Page.TotalPages,
	)

	return listings, page < resp.Page.TotalPages-1, nil
}

func (a *Adapter) transform(p apiProduct) domain.RawListing {
	listing := domain.RawListing{
		ProductID:     strconv.FormatInt(p.WebshopID, 10),
		Name:          p.Title,
		Category:      p.MainCategory,
		Price:         p.Price.Now,
		UnitAmount:    p.SalesUnitSize,
		OriginalPrice: p.Price.Was,
	}

	if len(p.Images) > 0 && p.Images[0].URL != "" {
		listing.ImageURL = &p.Images[0].URL
	}

	if p.Discount != nil {
		if p.Discount.BonusMechanism != "" {
			listing.DiscountType = &p.Discount.BonusMechanism
		}
		listing.DiscountStart = parseDate(p.Discount.StartDate)
		listing.DiscountEnd = parseDate(p.Discount.EndDate)
	}

	return listing
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
