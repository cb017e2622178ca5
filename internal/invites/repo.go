package invites

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
)

// Repository handles vendor invite persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to invite operations. Passing a transaction
// handle scopes every operation to that transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new invite row.
func (r *Repository) Create(ctx context.Context, invite *models.VendorInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

// FindByToken loads an invite by its raw token.
func (r *Repository) FindByToken(ctx context.Context, token string) (*models.VendorInvite, error) {
	var invite models.VendorInvite
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&invite).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// Consume marks the invite used by the given user, but only if it has not
// been consumed yet. The guard rides in the WHERE clause so two concurrent
// registrations cannot both win; the loser sees consumed=false.
func (r *Repository) Consume(ctx context.Context, id uuid.UUID, usedBy uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.VendorInvite{}).
		Where("id = ? AND used_at IS NULL", id).
		Updates(map[string]any{
			"used_at": at,
			"used_by": usedBy,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
