// Package normalize converts raw per-site listings into canonical product
// records: unit-price computation, discount validation and search tags.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pricewatch/internal/domain"
)

const maxSearchTagsLen = 500

var unitAmountRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*([a-zA-Z]+)`)

// unitSymbols maps published unit symbols to the closed UnitType enumeration.
var unitSymbols = map[string]domain.UnitType{
	"g":        domain.UnitGram,
	"gram":     domain.UnitGram,
	"kg":       domain.UnitKG,
	"kilogram": domain.UnitKG,
	"ml":       domain.UnitML,
	"l":        domain.UnitLiter,
	"liter":    domain.UnitLiter,
	"litre":    domain.UnitLiter,
	"st":       domain.UnitPiece,
	"stuk":     domain.UnitPiece,
	"stuks":    domain.UnitPiece,
	"piece":    domain.UnitPiece,
	"pieces":   domain.UnitPiece,
	"m":        domain.UnitMeter,
	"meter":    domain.UnitMeter,
}

// Normalize validates a raw listing and derives the canonical record for it.
// Failures are per-item: callers skip the listing and move on.
func Normalize(raw domain.RawListing, supermarketCode string) (*domain.ProductRecord, error) {
	name := strings.TrimSpace(raw.Name)
	category := strings.TrimSpace(raw.Category)

	switch {
	case raw.ProductID == "":
		return nil, &domain.NormalizationError{Reason: domain.ReasonMissingRequiredField, Field: "product_id"}
	case name == "":
		return nil, &domain.NormalizationError{Reason: domain.ReasonMissingRequiredField, Field: "name"}
	case category == "":
		return nil, &domain.NormalizationError{Reason: domain.ReasonMissingRequiredField, Field: "category"}
	case strings.TrimSpace(raw.UnitAmount) == "":
		return nil, &domain.NormalizationError{Reason: domain.ReasonMissingRequiredField, Field: "unit_amount"}
	}

	if raw.Price <= 0 {
		return nil, &domain.NormalizationError{
			Reason: domain.ReasonInvalidPrice,
			Field:  "price",
			Detail: strconv.FormatFloat(raw.Price, 'f', -1, 64),
		}
	}

	quantity, unitType, err := ParseUnitAmount(raw.UnitAmount)
	if err != nil {
		return nil, err
	}

	rec := &domain.ProductRecord{
		SupermarketCode: supermarketCode,
		ProductID:       raw.ProductID,
		Name:            name,
		Category:        category,
		Price:           round2(raw.Price),
		UnitAmount:      strings.TrimSpace(raw.UnitAmount),
		UnitType:        unitType,
		PricePerUnit:    round2(raw.Price / canonicalQuantity(quantity, unitType)),
		DiscountType:    raw.DiscountType,
		ImageURL:        raw.ImageURL,
		SearchTags:      SearchTags(name, category),
	}

	applyDiscount(rec, raw)

	return rec, nil
}

// ParseUnitAmount splits a published package-size string ("500g", "1,5 l",
// "6 stuks") into a quantity and a unit type.
func ParseUnitAmount(unitAmount string) (float64, domain.UnitType, error) {
	m := unitAmountRe.FindStringSubmatch(strings.ToLower(unitAmount))
	if m == nil {
		return 0, "", &domain.NormalizationError{
			Reason: domain.ReasonUnrecognizedUnit,
			Field:  "unit_amount",
			Detail: unitAmount,
		}
	}

	quantity, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil || quantity <= 0 {
		return 0, "", &domain.NormalizationError{
			Reason: domain.ReasonUnrecognizedUnit,
			Field:  "unit_amount",
			Detail: unitAmount,
		}
	}

	unitType, ok := unitSymbols[m[2]]
	if !ok {
		return 0, "", &domain.NormalizationError{
			Reason: domain.ReasonUnrecognizedUnit,
			Field:  "unit_amount",
			Detail: m[2],
		}
	}

	return quantity, unitType, nil
}

// canonicalQuantity converts the published quantity to the canonical unit
// for comparisons: grams to kg and ml to liter, everything else as-is.
func canonicalQuantity(quantity float64, unitType domain.UnitType) float64 {
	switch unitType {
	case domain.UnitGram, domain.UnitML:
		return quantity / 1000
	default:
		return quantity
	}
}

// applyDiscount copies discount fields onto the record only when they pass
// validation. An original price at or below the current price is a data
// quality error: the discount fields are dropped rather than inverted.
func applyDiscount(rec *domain.ProductRecord, raw domain.RawListing) {
	if raw.OriginalPrice == nil {
		rec.DiscountStart, rec.DiscountEnd = validDiscountDates(raw.DiscountStart, raw.DiscountEnd)
		return
	}

	if *raw.OriginalPrice <= raw.Price {
		rec.OriginalPrice = nil
		rec.DiscountType = nil
		rec.DiscountStart = nil
		rec.DiscountEnd = nil
		return
	}

	orig := round2(*raw.OriginalPrice)
	rec.OriginalPrice = &orig
	rec.DiscountStart, rec.DiscountEnd = validDiscountDates(raw.DiscountStart, raw.DiscountEnd)
}

func validDiscountDates(start, end *time.Time) (*time.Time, *time.Time) {
	if start != nil && end != nil && start.After(*end) {
		return nil, nil
	}
	return start, end
}

// DiscountPercent returns the display discount percentage for a record on
// offer, zero otherwise.
func DiscountPercent(rec *domain.ProductRecord) float64 {
	if rec.OriginalPrice == nil || *rec.OriginalPrice <= 0 {
		return 0
	}
	return round2((*rec.OriginalPrice - rec.Price) / *rec.OriginalPrice * 100)
}

// round2 rounds half-up to currency-minor-unit precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
