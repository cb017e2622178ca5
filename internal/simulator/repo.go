package simulator

import (
	"context"

	"gorm.io/gorm"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
)

// Repository persists simulation requests.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to simulation persistence.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new simulation row.
func (r *Repository) Create(ctx context.Context, result *models.SimulationResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}
