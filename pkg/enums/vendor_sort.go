package enums

import "fmt"

// VendorSortField is the whitelist of sortable vendor listing columns.
type VendorSortField string

const (
	VendorSortRating      VendorSortField = "rating"
	VendorSortReviewCount VendorSortField = "reviewCount"
	VendorSortPriceMin    VendorSortField = "priceMin"
	VendorSortCreatedAt   VendorSortField = "createdAt"
)

var vendorSortColumns = map[VendorSortField]string{
	VendorSortRating:      "rating",
	VendorSortReviewCount: "review_count",
	VendorSortPriceMin:    "price_min",
	VendorSortCreatedAt:   "created_at",
}

// ParseVendorSortField maps the API field name onto a whitelisted column.
func ParseVendorSortField(value string) (VendorSortField, error) {
	field := VendorSortField(value)
	if _, ok := vendorSortColumns[field]; !ok {
		return "", fmt.Errorf("unsupported sort field %q", value)
	}
	return field, nil
}

// Column returns the database column backing the sort field.
func (f VendorSortField) Column() string {
	if col, ok := vendorSortColumns[f]; ok {
		return col
	}
	return "rating"
}

// SortOrder is the listing sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ParseSortOrder defaults to descending for unknown values.
func ParseSortOrder(value string) SortOrder {
	if value == string(SortOrderAsc) {
		return SortOrderAsc
	}
	return SortOrderDesc
}
