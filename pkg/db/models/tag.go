package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/types"
)

// Tag is the canonical tag record. Vendors carry denormalized copies; no
// referential integrity is enforced between this table and embedded refs.
type Tag struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;not null;index" json:"categoryId"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	Slug       string    `gorm:"column:slug;not null;index" json:"slug"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// Ref returns the denormalized copy embedded into vendors.
func (t Tag) Ref() types.TagRef {
	return types.TagRef{ID: t.ID, Name: t.Name, Slug: t.Slug}
}
