package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
)

// Booking ties a customer to a vendor for a date. Workflow transitions are
// driven outside this service; the catalog only reads aggregates.
type Booking struct {
	ID        uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	VendorID  uuid.UUID           `gorm:"column:vendor_id;type:uuid;not null;index" json:"vendorId"`
	Date      time.Time           `gorm:"column:date;not null" json:"date"`
	Status    enums.BookingStatus `gorm:"column:status;type:text;not null;default:'PENDING'" json:"status"`
	Notes     *string             `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
