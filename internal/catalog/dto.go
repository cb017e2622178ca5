package catalog

import (
	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/internal/reviews"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
	"github.com/haneulsoft/weddingmoa-backend/pkg/pagination"
)

// ListVendorsInput carries the catalog listing filters after validation.
type ListVendorsInput struct {
	CategoryID *uuid.UUID
	Location   string
	PriceMin   *int
	PriceMax   *int
	TagSlugs   []string
	SortBy     enums.VendorSortField
	SortOrder  enums.SortOrder
	Page       int
	Limit      int
}

func (in ListVendorsInput) params() pagination.Params {
	return pagination.Params{Page: in.Page, Limit: in.Limit}.Normalize()
}

// VendorDetailDTO is a vendor joined with its category and recent reviews.
type VendorDetailDTO struct {
	models.Vendor
	RecentReviews []reviews.ReviewDTO `json:"recentReviews"`
}

// CategoryWithCountDTO is a category with its live active-vendor count.
type CategoryWithCountDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	VendorCount  int64     `json:"vendorCount"`
}
