package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/types"
)

// Vendor is a business listing in the marketplace catalog. Tags and images are
// embedded JSONB arrays (denormalized copies), mirroring the document shape the
// catalog was designed around.
type Vendor struct {
	ID            uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CategoryID    uuid.UUID           `gorm:"column:category_id;type:uuid;not null;index" json:"categoryId"`
	OwnerID       *uuid.UUID          `gorm:"column:owner_id;type:uuid" json:"ownerId,omitempty"`
	Name          string              `gorm:"column:name;not null" json:"name"`
	Slug          string              `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Description   *string             `gorm:"column:description" json:"description,omitempty"`
	Phone         *string             `gorm:"column:phone" json:"phone,omitempty"`
	Email         *string             `gorm:"column:email" json:"email,omitempty"`
	Website       *string             `gorm:"column:website" json:"website,omitempty"`
	Location      string              `gorm:"column:location;not null" json:"location"`
	Lat           *float64            `gorm:"column:lat" json:"lat,omitempty"`
	Lng           *float64            `gorm:"column:lng" json:"lng,omitempty"`
	PriceRange    *string             `gorm:"column:price_range" json:"priceRange,omitempty"`
	PriceMin      *int                `gorm:"column:price_min" json:"priceMin,omitempty"`
	PriceMax      *int                `gorm:"column:price_max" json:"priceMax,omitempty"`
	BusinessHours types.BusinessHours `gorm:"column:business_hours;type:jsonb" json:"businessHours,omitempty"`
	Tags          types.TagRefs       `gorm:"column:tags;type:jsonb;not null;default:'[]'" json:"tags"`
	Images        types.Images        `gorm:"column:images;type:jsonb;not null;default:'[]'" json:"images"`
	Metadata      types.Metadata      `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	Rating        float64             `gorm:"column:rating;not null;default:0" json:"rating"`
	ReviewCount   int                 `gorm:"column:review_count;not null;default:0" json:"reviewCount"`
	BookingCount  int                 `gorm:"column:booking_count;not null;default:0" json:"bookingCount"`
	FavoriteCount int                 `gorm:"column:favorite_count;not null;default:0" json:"favoriteCount"`
	ViewCount     int                 `gorm:"column:view_count;not null;default:0" json:"viewCount"`
	IsVerified    bool                `gorm:"column:is_verified;not null;default:false" json:"isVerified"`
	IsActive      bool                `gorm:"column:is_active;not null;default:true" json:"isActive"`
	IsPremium     bool                `gorm:"column:is_premium;not null;default:false" json:"isPremium"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Category *VendorCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
