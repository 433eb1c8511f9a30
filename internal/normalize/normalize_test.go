package normalize

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewatch/internal/domain"
	"pricewatch/testdata/utils"
)

func validListing() domain.RawListing {
	return domain.RawListing{
		ProductID:  "wi123",
		Name:       "Biologische halfvolle melk",
		Category:   "Zuivel",
		Price:      2.50,
		UnitAmount: "500g",
	}
}

func TestNormalize_HappyPath(t *testing.T) {
	rec, err := Normalize(validListing(), "AH")
	require.NoError(t, err)

	assert.Equal(t, "AH", rec.SupermarketCode)
	assert.Equal(t, "wi123", rec.ProductID)
	assert.Equal(t, "Biologische halfvolle melk", rec.Name)
	assert.Equal(t, "Zuivel", rec.Category)
	assert.Equal(t, 2.50, rec.Price)
	assert.Equal(t, domain.UnitGram, rec.UnitType)
	assert.Equal(t, 5.00, rec.PricePerUnit) // 2.50 for 500g is 5.00/kg
	assert.Equal(t, "biologische, halfvolle, melk, zuivel", rec.SearchTags)
	assert.Nil(t, rec.OriginalPrice)
	assert.False(t, rec.OnOffer())
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	raw := validListing()
	raw.Name = "  Melk  "
	raw.Category = " Zuivel "
	raw.UnitAmount = " 500g "

	rec, err := Normalize(raw, "AH")
	require.NoError(t, err)
	assert.Equal(t, "Melk", rec.Name)
	assert.Equal(t, "Zuivel", rec.Category)
	assert.Equal(t, "500g", rec.UnitAmount)
}

func TestNormalize_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*domain.RawListing)
	}{
		{"product_id", func(r *domain.RawListing) { r.ProductID = "" }},
		{"name", func(r *domain.RawListing) { r.Name = "   " }},
		{"category", func(r *domain.RawListing) { r.Category = "" }},
		{"unit_amount", func(r *domain.RawListing) { r.UnitAmount = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			raw := validListing()
			tt.mutate(&raw)

			_, err := Normalize(raw, "AH")
			require.Error(t, err)
			require.True(t, domain.IsNormalizationError(err))

			var nerr *domain.NormalizationError
			require.True(t, errors.As(err, &nerr))
			assert.Equal(t, domain.ReasonMissingRequiredField, nerr.Reason)
			assert.Equal(t, tt.field, nerr.Field)
		})
	}
}

func TestNormalize_InvalidPrice(t *testing.T) {
	for _, price := range []float64{0, -1.50} {
		raw := validListing()
		raw.Price = price

		_, err := Normalize(raw, "AH")
		require.Error(t, err)

		var nerr *domain.NormalizationError
		require.True(t, errors.As(err, &nerr))
		assert.Equal(t, domain.ReasonInvalidPrice, nerr.Reason)
	}
}

func TestNormalize_UnrecognizedUnit(t *testing.T) {
	raw := validListing()
	raw.UnitAmount = "500 florps"

	_, err := Normalize(raw, "AH")
	require.Error(t, err)

	var nerr *domain.NormalizationError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, domain.ReasonUnrecognizedUnit, nerr.Reason)
}

func TestNormalize_ValidDiscount(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	raw := validListing()
	raw.Price = 2.00
	raw.OriginalPrice = utils.Ptr(3.00)
	raw.DiscountType = utils.Ptr("BONUS")
	raw.DiscountStart = &start
	raw.DiscountEnd = &end

	rec, err := Normalize(raw, "AH")
	require.NoError(t, err)

	require.NotNil(t, rec.OriginalPrice)
	assert.Equal(t, 3.00, *rec.OriginalPrice)
	assert.Equal(t, "BONUS", *rec.DiscountType)
	assert.Equal(t, start, *rec.DiscountStart)
	assert.Equal(t, end, *rec.DiscountEnd)
	assert.True(t, rec.OnOffer())
	assert.Equal(t, 33.33, DiscountPercent(rec))
}

func TestNormalize_InvertedDiscountDropped(t *testing.T) {
	raw := validListing()
	raw.Price = 3.00
	raw.OriginalPrice = utils.Ptr(2.00) // below current price
	raw.DiscountType = utils.Ptr("BONUS")
	raw.DiscountEnd = utils.Ptr(time.Now())

	rec, err := Normalize(raw, "AH")
	require.NoError(t, err)

	assert.Nil(t, rec.OriginalPrice)
	assert.Nil(t, rec.DiscountType)
	assert.Nil(t, rec.DiscountStart)
	assert.Nil(t, rec.DiscountEnd)
	assert.False(t, rec.OnOffer())
	assert.Equal(t, 3.00, rec.Price)
}

func TestNormalize_EqualOriginalPriceDropped(t *testing.T) {
	raw := validListing()
	raw.Price = 2.50
	raw.OriginalPrice = utils.Ptr(2.50)

	rec, err := Normalize(raw, "AH")
	require.NoError(t, err)
	assert.Nil(t, rec.OriginalPrice)
}

func TestNormalize_InvertedDiscountDatesDropped(t *testing.T) {
	start := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	raw := validListing()
	raw.Price = 2.00
	raw.OriginalPrice = utils.Ptr(3.00)
	raw.DiscountStart = &start
	raw.DiscountEnd = &end

	rec, err := Normalize(raw, "AH")
	require.NoError(t, err)

	require.NotNil(t, rec.OriginalPrice) // price discount survives on its own
	assert.Nil(t, rec.DiscountStart)
	assert.Nil(t, rec.DiscountEnd)
}

func TestParseUnitAmount(t *testing.T) {
	tests := []struct {
		in       string
		quantity float64
		unitType domain.UnitType
	}{
		{"500g", 500, domain.UnitGram},
		{"1 kg", 1, domain.UnitKG},
		{"1,5 l", 1.5, domain.UnitLiter},
		{"0.75 liter", 0.75, domain.UnitLiter},
		{"750 ml", 750, domain.UnitML},
		{"6 stuks", 6, domain.UnitPiece},
		{"1 st", 1, domain.UnitPiece},
		{"2 Stuks", 2, domain.UnitPiece},
		{"3 m", 3, domain.UnitMeter},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			quantity, unitType, err := ParseUnitAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, quantity)
			assert.Equal(t, tt.unitType, unitType)
		})
	}
}

func TestParseUnitAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "gram", "??", "500 widgets"} {
		t.Run(in, func(t *testing.T) {
			_, _, err := ParseUnitAmount(in)
			require.Error(t, err)
			assert.True(t, domain.IsNormalizationError(err))
		})
	}
}

func TestNormalize_PricePerUnitCanonical(t *testing.T) {
	tests := []struct {
		unitAmount string
		price      float64
		perUnit    float64
	}{
		{"500g", 2.50, 5.00},   // per kg
		{"750 ml", 1.50, 2.00}, // per liter
		{"2 kg", 5.00, 2.50},
		{"6 stuks", 3.00, 0.50},
		{"1,5 l", 3.00, 2.00},
	}

	for _, tt := range tests {
		t.Run(tt.unitAmount, func(t *testing.T) {
			raw := validListing()
			raw.Price = tt.price
			raw.UnitAmount = tt.unitAmount

			rec, err := Normalize(raw, "AH")
			require.NoError(t, err)
			assert.Equal(t, tt.perUnit, rec.PricePerUnit)
		})
	}
}

func TestDiscountPercent_NoOffer(t *testing.T) {
	rec, err := Normalize(validListing(), "AH")
	require.NoError(t, err)
	assert.Equal(t, 0.0, DiscountPercent(rec))
}
