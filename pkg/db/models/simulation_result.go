package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
)

// SimulationResult tracks one AI wedding photo simulation request. The
// generation pipeline is not wired up yet, so rows stay PENDING after upload.
type SimulationResult struct {
	ID             uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         *uuid.UUID             `gorm:"column:user_id;type:uuid" json:"userId,omitempty"`
	BrideImageURL  string                 `gorm:"column:bride_image_url;not null" json:"brideImageUrl"`
	GroomImageURL  string                 `gorm:"column:groom_image_url;not null" json:"groomImageUrl"`
	ResultImageURL *string                `gorm:"column:result_image_url" json:"resultImageUrl,omitempty"`
	Status         enums.SimulationStatus `gorm:"column:status;type:text;not null;default:'PENDING'" json:"status"`
	CreatedAt      time.Time              `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time              `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
