package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/haneulsoft/weddingmoa-backend/pkg/db/types"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
)

// User represents the canonical identity entity. Favorited vendors are kept as
// an embedded id array rather than a join table; pushes are append-only and the
// model itself does not deduplicate.
type User struct {
	ID                uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email             string            `gorm:"type:text;not null;uniqueIndex"`
	Name              string            `gorm:"column:name;not null"`
	Phone             *string           `gorm:"column:phone"`
	PasswordHash      string            `gorm:"column:password_hash;not null"`
	Role              enums.UserRole    `gorm:"column:role;type:text;not null;default:'CUSTOMER'"`
	EmailVerified     bool              `gorm:"column:email_verified;not null;default:false"`
	IsActive          bool              `gorm:"column:is_active;not null;default:true"`
	FavoriteVendorIDs dbtypes.UUIDArray `gorm:"type:uuid[];column:favorite_vendor_ids;not null;default:ARRAY[]::uuid[]"`
	LastLoginAt       *time.Time        `gorm:"column:last_login_at"`
	CreatedAt         time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
