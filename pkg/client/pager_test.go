package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	"github.com/haneulsoft/weddingmoa-backend/pkg/pagination"
)

func newCatalogServer(t *testing.T, totalPages int, perPage int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/vendors" {
			http.NotFound(w, r)
			return
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page <= 0 {
			page = 1
		}
		vendors := make([]models.Vendor, 0, perPage)
		for i := 0; i < perPage; i++ {
			vendors = append(vendors, models.Vendor{
				Name: fmt.Sprintf("vendor-p%d-%d", page, i),
			})
		}
		resp := VendorPage{
			Vendors: vendors,
			Pagination: pagination.Meta{
				Total:      int64(totalPages * perPage),
				Page:       page,
				Limit:      perPage,
				TotalPages: totalPages,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestVendorPagerAccumulatesInFetchOrder(t *testing.T) {
	srv := newCatalogServer(t, 3, 2)
	defer srv.Close()

	api, err := New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	pager := NewVendorPager(api, VendorQuery{Limit: 2})

	for i := 0; i < 3; i++ {
		if err := pager.LoadMore(context.Background()); err != nil {
			t.Fatalf("load page %d: %v", i+1, err)
		}
	}

	items := pager.Items()
	if len(items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(items))
	}
	if items[0].Name != "vendor-p1-0" || items[5].Name != "vendor-p3-1" {
		t.Fatalf("items out of fetch order: first=%s last=%s", items[0].Name, items[5].Name)
	}
	if pager.HasMore() {
		t.Fatal("expected exhausted pager")
	}
}

func TestVendorPagerLoadMoreNoOpWhenExhausted(t *testing.T) {
	srv := newCatalogServer(t, 1, 2)
	defer srv.Close()

	api, err := New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	pager := NewVendorPager(api, VendorQuery{})

	if err := pager.LoadMore(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := pager.LoadMore(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := len(pager.Items()); got != 2 {
		t.Fatalf("exhausted pager grew: %d items", got)
	}
}

// blockingLister parks ListVendors until released, to observe in-flight state.
type blockingLister struct {
	release chan struct{}
	calls   int
	mu      sync.Mutex
}

func (b *blockingLister) ListVendors(ctx context.Context, query VendorQuery) (*VendorPage, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	<-b.release
	return &VendorPage{
		Vendors:    []models.Vendor{{Name: "v"}},
		Pagination: pagination.Meta{Total: 1, Page: query.Page, Limit: 20, TotalPages: 1},
	}, nil
}

func TestVendorPagerLoadMoreNoOpWhileInFlight(t *testing.T) {
	lister := &blockingLister{release: make(chan struct{})}
	pager := NewVendorPager(lister, VendorQuery{})

	done := make(chan error, 1)
	go func() {
		done <- pager.LoadMore(context.Background())
	}()

	for !pager.Loading() {
		time.Sleep(time.Millisecond)
	}

	// Second call must return immediately without fetching.
	if err := pager.LoadMore(context.Background()); err != nil {
		t.Fatal(err)
	}

	close(lister.release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	lister.mu.Lock()
	calls := lister.calls
	lister.mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected a single fetch, got %d", calls)
	}
}

func TestVendorPagerResetRestartsFromPageOne(t *testing.T) {
	srv := newCatalogServer(t, 2, 2)
	defer srv.Close()

	api, err := New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	pager := NewVendorPager(api, VendorQuery{Location: "서울"})

	if err := pager.LoadMore(context.Background()); err != nil {
		t.Fatal(err)
	}

	pager.Reset(VendorQuery{Location: "부산"})
	if len(pager.Items()) != 0 {
		t.Fatal("reset must clear accumulated items")
	}
	if !pager.HasMore() {
		t.Fatal("reset must restore hasMore")
	}

	if err := pager.LoadMore(context.Background()); err != nil {
		t.Fatal(err)
	}
	items := pager.Items()
	if len(items) != 2 || items[0].Name != "vendor-p1-0" {
		t.Fatalf("expected page 1 after reset, got %+v", items)
	}
}
