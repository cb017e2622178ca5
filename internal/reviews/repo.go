package reviews

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecentLimit caps how many reviews ride along on a vendor detail response.
const RecentLimit = 10

// Repository reads vendor reviews.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to review reads.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListRecentByVendor returns the newest reviews for a vendor with the author
// name resolved, capped at RecentLimit.
func (r *Repository) ListRecentByVendor(ctx context.Context, vendorID uuid.UUID) ([]ReviewDTO, error) {
	var rows []ReviewDTO
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id, reviews.vendor_id, reviews.user_id, users.name AS user_name, reviews.rating, reviews.content, reviews.vendor_response, reviews.created_at").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.vendor_id = ?", vendorID).
		Order("reviews.created_at DESC").
		Limit(RecentLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
