package adapter

import (
	"context"

	"pricewatch/internal/domain"
)

// PageFunc fetches one page of listings. It reports whether more pages
// remain after this one.
type PageFunc func(ctx context.Context, page int) (items []domain.RawListing, more bool, err error)

// NewPagedStream adapts a page-oriented source into a lazy Stream: the next
// page is only requested once the previous one has been fully consumed.
func NewPagedStream(fetch PageFunc) Stream {
	return &pagedStream{fetch: fetch}
}

type pagedStream struct {
	fetch PageFunc
	buf   []domain.RawListing
	page  int
	done  bool
}

func (s *pagedStream) Next(ctx context.Context) (domain.RawListing, error) {
	for len(s.buf) == 0 {
		if s.done {
			return domain.RawListing{}, ErrEndOfListings
		}

		items, more, err := s.fetch(ctx, s.page)
		if err != nil {
			return domain.RawListing{}, err
		}
		s.page++
		// An empty page also terminates; trusting `more` alone could spin
		// on a source that keeps promising further pages.
		if !more || len(items) == 0 {
			s.done = true
		}
		s.buf = items
	}

	item := s.buf[0]
	s.buf = s.buf[1:]
	return item, nil
}
