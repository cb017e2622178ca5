package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/internal/reviews"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
	"github.com/haneulsoft/weddingmoa-backend/pkg/pagination"
)

type catalogRepository interface {
	List(ctx context.Context, in ListVendorsInput) ([]models.Vendor, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	FindCategoryBySlug(ctx context.Context, slug string) (*models.VendorCategory, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	CategoriesWithCounts(ctx context.Context) ([]CategoryWithCountDTO, error)
}

type reviewsRepository interface {
	ListRecentByVendor(ctx context.Context, vendorID uuid.UUID) ([]reviews.ReviewDTO, error)
}

// Service exposes the public vendor catalog reads.
type Service interface {
	List(ctx context.Context, in ListVendorsInput) ([]models.Vendor, pagination.Meta, error)
	ListByCategorySlug(ctx context.Context, slug string, in ListVendorsInput) ([]models.Vendor, pagination.Meta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VendorDetailDTO, error)
	Categories(ctx context.Context) ([]CategoryWithCountDTO, error)
}

type service struct {
	repo    catalogRepository
	reviews reviewsRepository
	logg    *logger.Logger
}

// NewService builds the catalog service with the provided repositories.
func NewService(repo catalogRepository, reviewsRepo reviewsRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if reviewsRepo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, reviews: reviewsRepo, logg: logg}, nil
}

func (s *service) List(ctx context.Context, in ListVendorsInput) ([]models.Vendor, pagination.Meta, error) {
	if in.PriceMin != nil && in.PriceMax != nil && *in.PriceMin > *in.PriceMax {
		return nil, pagination.Meta{}, pkgerrors.New(pkgerrors.CodeValidation, "최소 가격이 최대 가격보다 클 수 없습니다.")
	}

	vendors, total, err := s.repo.List(ctx, in)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "업체 목록을 불러오지 못했습니다.")
	}
	return vendors, pagination.NewMeta(total, in.params()), nil
}

func (s *service) ListByCategorySlug(ctx context.Context, slug string, in ListVendorsInput) ([]models.Vendor, pagination.Meta, error) {
	category, err := s.repo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pagination.Meta{}, pkgerrors.New(pkgerrors.CodeNotFound, "카테고리를 찾을 수 없습니다.")
		}
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "카테고리를 불러오지 못했습니다.")
	}

	in.CategoryID = &category.ID
	return s.List(ctx, in)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*VendorDetailDTO, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "업체를 찾을 수 없습니다.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "업체 정보를 불러오지 못했습니다.")
	}

	// The view counter is best-effort; a failed bump must not break the read.
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		s.logg.Error(s.logg.WithVendorID(ctx, id.String()), "incrementing vendor view count", err)
	}

	recent, err := s.reviews.ListRecentByVendor(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "리뷰를 불러오지 못했습니다.")
	}

	return &VendorDetailDTO{Vendor: *vendor, RecentReviews: recent}, nil
}

func (s *service) Categories(ctx context.Context) ([]CategoryWithCountDTO, error) {
	categories, err := s.repo.CategoriesWithCounts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "카테고리 목록을 불러오지 못했습니다.")
	}
	return categories, nil
}
