package domain

import "time"

// UnitType is the closed set of package units a listing can be published in.
type UnitType string

const (
	UnitKG    UnitType = "kg"
	UnitLiter UnitType = "liter"
	UnitPiece UnitType = "piece"
	UnitMeter UnitType = "meter"
	UnitGram  UnitType = "gram"
	UnitML    UnitType = "ml"
)

// RawListing is what a site adapter emits before normalization. Adapters
// never compute derived fields; PricePerUnit and SearchTags are filled in
// by the normalizer only.
type RawListing struct {
	ProductID     string
	Name          string
	Category      string
	Price         float64
	UnitAmount    string
	OriginalPrice *float64
	DiscountType  *string
	DiscountStart *time.Time
	DiscountEnd   *time.Time
	ImageURL      *string
}

// ProductRecord is the canonical product shape persisted per
// (SupermarketCode, ProductID).
type ProductRecord struct {
	ID              int64
	SupermarketCode string
	ProductID       string
	Name            string
	Category        string
	Price           float64
	UnitAmount      string
	UnitType        UnitType
	PricePerUnit    float64
	OriginalPrice   *float64
	DiscountType    *string
	DiscountStart   *time.Time
	DiscountEnd     *time.Time
	SearchTags      string
	ImageURL        *string
	CreatedAt       time.Time
	LastUpdated     time.Time
}

// OnOffer reports whether the record carries a validated discount.
func (p *ProductRecord) OnOffer() bool {
	return p.OriginalPrice != nil
}

// UpsertOutcome tells whether an upsert created a new row or overwrote an
// existing one.
type UpsertOutcome int

const (
	OutcomeInserted UpsertOutcome = iota
	OutcomeUpdated
)

func (o UpsertOutcome) String() string {
	if o == OutcomeInserted {
		return "inserted"
	}
	return "updated"
}

// PriceObservation is one immutable price-history fact.
type PriceObservation struct {
	Price         float64
	OriginalPrice *float64
	PricePerUnit  float64
	DiscountType  *string
	ObservedAt    time.Time
}
