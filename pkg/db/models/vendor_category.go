package models

import (
	"time"

	"github.com/google/uuid"
)

// VendorCategory is a fixed taxonomy entry (studio, makeup, dress, venue, car).
type VendorCategory struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug         string    `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Description  *string   `gorm:"column:description" json:"description,omitempty"`
	Icon         *string   `gorm:"column:icon" json:"icon,omitempty"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"displayOrder"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
