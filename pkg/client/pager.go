package client

import (
	"context"
	"sync"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
)

// vendorLister is the slice of Client the pager needs.
type vendorLister interface {
	ListVendors(ctx context.Context, query VendorQuery) (*VendorPage, error)
}

// VendorPager accumulates catalog pages for infinite-scroll style consumption.
// Pages append in fetch order; a fetch already in flight or an exhausted result
// set turns LoadMore into a no-op. Changing filters requires Reset, which
// starts over from page 1.
type VendorPager struct {
	api   vendorLister
	query VendorQuery

	mu       sync.Mutex
	items    []models.Vendor
	nextPage int
	hasMore  bool
	inFlight bool
}

// NewVendorPager builds a pager for the given filters. Page on the query is
// ignored; the pager owns page progression.
func NewVendorPager(api vendorLister, query VendorQuery) *VendorPager {
	return &VendorPager{
		api:      api,
		query:    query,
		nextPage: 1,
		hasMore:  true,
	}
}

// Items returns the vendors accumulated so far, in fetch order.
func (p *VendorPager) Items() []models.Vendor {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Vendor, len(p.items))
	copy(out, p.items)
	return out
}

// HasMore reports whether another page is available.
func (p *VendorPager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Loading reports whether a fetch is currently in flight.
func (p *VendorPager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight
}

// LoadMore fetches the next page and appends it. It is a no-op when a fetch is
// already in flight or all pages have been consumed.
func (p *VendorPager) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.inFlight || !p.hasMore {
		p.mu.Unlock()
		return nil
	}
	p.inFlight = true
	query := p.query
	query.Page = p.nextPage
	p.mu.Unlock()

	page, err := p.api.ListVendors(ctx, query)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	if err != nil {
		// Failed fetches keep the cursor so the caller can retry.
		return err
	}

	p.items = append(p.items, page.Vendors...)
	p.nextPage = page.Pagination.Page + 1
	p.hasMore = page.Pagination.HasMore()
	return nil
}

// Reset discards accumulated items and restarts from page 1 with new filters.
func (p *VendorPager) Reset(query VendorQuery) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query = query
	p.items = nil
	p.nextPage = 1
	p.hasMore = true
	p.inFlight = false
}
