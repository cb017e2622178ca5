package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
)

// Repository handles vendor catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to catalog operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns one page of active vendors with the total matching count. Every
// filter, including tag containment, is applied before counting and paginating
// so the rows and the total always describe the same result set.
func (r *Repository) List(ctx context.Context, in ListVendorsInput) ([]models.Vendor, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Vendor{}).
		Where("is_active = ?", true)

	if in.CategoryID != nil {
		q = q.Where("category_id = ?", *in.CategoryID)
	}
	if in.Location != "" {
		q = q.Where("location ILIKE ?", "%"+in.Location+"%")
	}
	if in.PriceMin != nil {
		q = q.Where("price_min >= ?", *in.PriceMin)
	}
	if in.PriceMax != nil {
		q = q.Where("price_max <= ?", *in.PriceMax)
	}
	if len(in.TagSlugs) > 0 {
		tagQuery, err := tagContainment(r.db, in.TagSlugs)
		if err != nil {
			return nil, 0, err
		}
		q = q.Where(tagQuery)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params := in.params()
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = enums.VendorSortRating
	}
	order := string(in.SortOrder)
	if order == "" {
		order = string(enums.SortOrderDesc)
	}

	var vendors []models.Vendor
	err := q.
		Order(fmt.Sprintf("%s %s", sortBy.Column(), order)).
		Offset(params.Offset()).
		Limit(params.Limit).
		Preload("Category").
		Find(&vendors).Error
	if err != nil {
		return nil, 0, err
	}
	return vendors, total, nil
}

// tagContainment builds an OR-group of JSONB containment checks, one per slug.
func tagContainment(db *gorm.DB, slugs []string) (*gorm.DB, error) {
	var group *gorm.DB
	for _, slug := range slugs {
		probe, err := json.Marshal([]map[string]string{{"slug": slug}})
		if err != nil {
			return nil, fmt.Errorf("encoding tag probe %q: %w", slug, err)
		}
		cond := db.Where("tags @> ?::jsonb", string(probe))
		if group == nil {
			group = cond
		} else {
			group = group.Or(cond)
		}
	}
	return group, nil
}

// FindByID loads one vendor with its category preloaded.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&vendor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// FindCategoryBySlug resolves one category row by its slug.
func (r *Repository) FindCategoryBySlug(ctx context.Context, slug string) (*models.VendorCategory, error) {
	var category models.VendorCategory
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// IncrementViewCount bumps the vendor's view counter in place. Every detail
// read counts; there is no per-viewer dedup.
func (r *Repository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Vendor{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// CategoriesWithCounts lists active categories by display order, each with a
// live count of its active vendors.
func (r *Repository) CategoriesWithCounts(ctx context.Context) ([]CategoryWithCountDTO, error) {
	var rows []CategoryWithCountDTO
	err := r.db.WithContext(ctx).
		Table("vendor_categories").
		Select(`vendor_categories.id, vendor_categories.name, vendor_categories.slug,
			vendor_categories.description, vendor_categories.icon, vendor_categories.display_order,
			COUNT(vendors.id) FILTER (WHERE vendors.is_active) AS vendor_count`).
		Joins("LEFT JOIN vendors ON vendors.category_id = vendor_categories.id").
		Where("vendor_categories.is_active = ?", true).
		Group("vendor_categories.id").
		Order("vendor_categories.display_order ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
