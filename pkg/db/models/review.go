package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer rating of a vendor with an optional vendor response.
type Review struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	VendorID       uuid.UUID `gorm:"column:vendor_id;type:uuid;not null;index" json:"vendorId"`
	Rating         int       `gorm:"column:rating;not null" json:"rating"`
	Content        string    `gorm:"column:content;not null" json:"content"`
	VendorResponse *string   `gorm:"column:vendor_response" json:"vendorResponse,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
