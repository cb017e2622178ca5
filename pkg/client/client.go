// Package client is a small Go consumer of the WeddingMoa API, used by
// internal tooling and integration tests.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	"github.com/haneulsoft/weddingmoa-backend/pkg/pagination"
)

const defaultTimeout = 15 * time.Second

// Client calls the public catalog endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New builds a Client for the given API base URL, e.g. "https://api.weddingmoa.kr".
func New(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("baseURL is required")
	}
	c := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// VendorQuery mirrors the catalog listing filters.
type VendorQuery struct {
	CategoryID string
	Location string
	Tags     []string
	PriceMin *int
	PriceMax *int
	Sort     string
	Order    string
	Page     int
	Limit    int
}

func (q VendorQuery) values() url.Values {
	v := url.Values{}
	if q.CategoryID != "" {
		v.Set("categoryId", q.CategoryID)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if len(q.Tags) > 0 {
		v.Set("tags", strings.Join(q.Tags, ","))
	}
	if q.PriceMin != nil {
		v.Set("priceMin", strconv.Itoa(*q.PriceMin))
	}
	if q.PriceMax != nil {
		v.Set("priceMax", strconv.Itoa(*q.PriceMax))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// VendorPage is one page of catalog results.
type VendorPage struct {
	Vendors    []models.Vendor `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

type apiErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// ListVendors fetches one catalog page.
func (c *Client) ListVendors(ctx context.Context, query VendorQuery) (*VendorPage, error) {
	endpoint := c.baseURL + "/api/v1/vendors"
	if encoded := query.values().Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope apiErrorEnvelope
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return nil, apiErr
	}

	var page VendorPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding vendor page: %w", err)
	}
	return &page, nil
}
