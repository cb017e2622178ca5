package favorites

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
)

// Repository mutates the embedded favorites array on users and the vendor
// counter that mirrors it.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to favorites persistence.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// VendorIsActive reports whether the vendor exists and is listed.
func (r *Repository) VendorIsActive(ctx context.Context, vendorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Vendor{}).
		Where("id = ? AND is_active = ?", vendorID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AppendFavorite pushes the vendor id onto the user's favorites array. The
// push is append-only: favoriting twice stores the id twice, matching the
// embedded-array data model.
func (r *Repository) AppendFavorite(ctx context.Context, userID, vendorID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("favorite_vendor_ids", gorm.Expr("array_append(favorite_vendor_ids, ?)", vendorID)).Error
}

// IncrementFavoriteCount bumps the vendor's favorite counter.
func (r *Repository) IncrementFavoriteCount(ctx context.Context, vendorID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Vendor{}).
		Where("id = ?", vendorID).
		UpdateColumn("favorite_count", gorm.Expr("favorite_count + 1")).Error
}

// FavoriteVendorIDs returns the raw stored id list for the user.
func (r *Repository) FavoriteVendorIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Select("favorite_vendor_ids").
		First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return user.FavoriteVendorIDs, nil
}

// VendorsByIDs loads the vendors for the stored favorite ids.
func (r *Repository) VendorsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Vendor, error) {
	if len(ids) == 0 {
		return []models.Vendor{}, nil
	}
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id IN ?", ids).
		Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}
