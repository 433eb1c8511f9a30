// Package adapter defines the contract every retailer-specific scraper
// satisfies and the shared HTTP plumbing the concrete adapters build on.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pricewatch/internal/domain"
)

// ErrEndOfListings is returned by Stream.Next when the source is exhausted.
var ErrEndOfListings = errors.New("end of listings")

// Stream yields raw listings one at a time. Streams are lazy, finite and
// non-restartable: pages are fetched from the remote source on demand, so a
// caller that stops early never pulls more than it consumed.
type Stream interface {
	Next(ctx context.Context) (domain.RawListing, error)
}

// Adapter fetches raw listings from one retailer. The catalog and offers
// operating modes are distinct Adapter values sharing this contract, chosen
// at construction rather than branched on at runtime.
type Adapter interface {
	// Code is the stable short retailer code, e.g. "AH".
	Code() string
	Name() string
	BaseURL() string
	Listings(ctx context.Context) (Stream, error)
}

// Select resolves a retailer selector ("all", a single code, or a comma or
// space separated list) against the available adapters.
func Select(available []Adapter, selector string) ([]Adapter, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" || strings.EqualFold(selector, "all") {
		return available, nil
	}

	byCode := make(map[string]Adapter, len(available))
	for _, a := range available {
		byCode[strings.ToUpper(a.Code())] = a
	}

	var selected []Adapter
	seen := make(map[string]struct{})
	for _, code := range strings.FieldsFunc(selector, func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		a, ok := byCode[code]
		if !ok {
			return nil, fmt.Errorf("unknown supermarket code %q", code)
		}
		selected = append(selected, a)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no supermarkets matched selector %q", selector)
	}
	return selected, nil
}
