package models

import (
	"time"

	"github.com/google/uuid"
)

// VendorInvite is a single-use, time-limited registration capability.
// Lifecycle: ISSUED -> EXPIRED (computed from ExpiresAt) or CONSUMED
// (UsedAt/UsedBy set exactly once); both are terminal.
type VendorInvite struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Token      string     `gorm:"column:token;not null;uniqueIndex" json:"-"`
	Email      *string    `gorm:"column:email" json:"email,omitempty"`
	CategoryID *uuid.UUID `gorm:"column:category_id;type:uuid" json:"categoryId,omitempty"`
	ExpiresAt  time.Time  `gorm:"column:expires_at;not null" json:"expiresAt"`
	UsedAt     *time.Time `gorm:"column:used_at" json:"usedAt,omitempty"`
	UsedBy     *uuid.UUID `gorm:"column:used_by;type:uuid" json:"usedBy,omitempty"`
	CreatedBy  uuid.UUID  `gorm:"column:created_by;type:uuid;not null" json:"createdBy"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// IsExpired reports whether the invite has passed its expiry at the given instant.
func (i VendorInvite) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsConsumed reports whether the invite has already been redeemed.
func (i VendorInvite) IsConsumed() bool {
	return i.UsedAt != nil
}
