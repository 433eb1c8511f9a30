package ah

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewatch/internal/adapter"
	"pricewatch/internal/domain"
	"pricewatch/testdata/utils"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func drain(t *testing.T, a *Adapter) []domain.RawListing {
	t.Helper()
	stream, err := a.Listings(context.Background())
	require.NoError(t, err)

	var listings []domain.RawListing
	for {
		item, err := stream.Next(context.Background())
		if errors.Is(err, adapter.ErrEndOfListings) {
			return listings
		}
		require.NoError(t, err)
		listings = append(listings, item)
	}
}

func TestCatalog_FetchesAllPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, searchPath, r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("bonus"))

		page := r.URL.Query().Get("page")
		fmt.Fprintf(w, `{
			"page": {"number": %s, "totalPages": 2},
			"cards": [{"products": [{
				"webshopId": 10%s,
				"title": "Product %s",
				"mainCategory": "Zuivel",
				"salesUnitSize": "500 g",
				"price": {"now": 2.50}
			}]}]
		}`, page, page, page)
	}))
	defer server.Close()

	a := NewCatalog(Config{BaseURL: server.URL}, testLogger())
	listings := drain(t, a)

	require.Len(t, listings, 2)
	assert.Equal(t, "100", listings[0].ProductID)
	assert.Equal(t, "101", listings[1].ProductID)
	assert.Equal(t, "Product 0", listings[0].Name)
	assert.Equal(t, "Zuivel", listings[0].Category)
	assert.Equal(t, 2.50, listings[0].Price)
	assert.Equal(t, "500 g", listings[0].UnitAmount)
}

func TestOffers_RequestsBonusSegment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("bonus"))
		fmt.Fprint(w, `{"page": {"number": 0, "totalPages": 1}, "cards": []}`)
	}))
	defer server.Close()

	a := NewOffers(Config{BaseURL: server.URL}, testLogger())
	listings := drain(t, a)
	assert.Empty(t, listings)
}

func TestTransform_Discount(t *testing.T) {
	a := NewCatalog(Config{}, testLogger())

	got := a.transform(apiProduct{
		WebshopID:     42,
		Title:         "Boerenkaas",
		MainCategory:  "Kaas",
		SalesUnitSize: "per stuk",
		Price:         apiPrice{Now: 4.49, Was: utils.Ptr(5.99)},
		Discount: &apiDiscount{
			BonusMechanism: "25% korting",
			StartDate:      "2025-06-01",
			EndDate:        "2025-06-07",
		},
		Images: []apiImage{{URL: "https://static.ah.nl/42.jpg"}},
	})

	assert.Equal(t, "42", got.ProductID)
	assert.Equal(t, 4.49, got.Price)
	require.NotNil(t, got.OriginalPrice)
	assert.Equal(t, 5.99, *got.OriginalPrice)
	require.NotNil(t, got.DiscountType)
	assert.Equal(t, "25% korting", *got.DiscountType)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *got.DiscountStart)
	assert.Equal(t, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), *got.DiscountEnd)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://static.ah.nl/42.jpg", *got.ImageURL)
}

func TestTransform_NoDiscountNoImage(t *testing.T) {
	a := NewCatalog(Config{}, testLogger())

	got := a.transform(apiProduct{
		WebshopID:     7,
		Title:         "Melk",
		MainCategory:  "Zuivel",
		SalesUnitSize: "1 l",
		Price:         apiPrice{Now: 1.19},
	})

	assert.Nil(t, got.OriginalPrice)
	assert.Nil(t, got.DiscountType)
	assert.Nil(t, got.DiscountStart)
	assert.Nil(t, got.DiscountEnd)
	assert.Nil(t, got.ImageURL)
}

func TestTransform_MalformedDateIgnored(t *testing.T) {
	a := NewCatalog(Config{}, testLogger())

	got := a.transform(apiProduct{
		WebshopID: 7,
		Title:     "Melk",
		Price:     apiPrice{Now: 1.19},
		Discount:  &apiDiscount{StartDate: "not-a-date"},
	})

	assert.Nil(t, got.DiscountStart)
}
