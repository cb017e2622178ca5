package favorites

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
)

type favoritesRepository interface {
	VendorIsActive(ctx context.Context, vendorID uuid.UUID) (bool, error)
	AppendFavorite(ctx context.Context, userID, vendorID uuid.UUID) error
	IncrementFavoriteCount(ctx context.Context, vendorID uuid.UUID) error
	FavoriteVendorIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	VendorsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Vendor, error)
}

// Service manages a user's favorited vendors.
type Service interface {
	Add(ctx context.Context, userID, vendorID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]models.Vendor, error)
}

type service struct {
	repo favoritesRepository
}

// NewService builds the favorites service.
func NewService(repo favoritesRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("favorites repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Add(ctx context.Context, userID, vendorID uuid.UUID) error {
	active, err := s.repo.VendorIsActive(ctx, vendorID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "업체를 확인하지 못했습니다.")
	}
	if !active {
		return pkgerrors.New(pkgerrors.CodeNotFound, "업체를 찾을 수 없습니다.")
	}

	if err := s.repo.AppendFavorite(ctx, userID, vendorID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "찜 목록에 추가하지 못했습니다.")
	}
	if err := s.repo.IncrementFavoriteCount(ctx, vendorID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "찜 횟수를 반영하지 못했습니다.")
	}
	return nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]models.Vendor, error) {
	ids, err := s.repo.FavoriteVendorIDs(ctx, userID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "사용자를 찾을 수 없습니다.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "찜 목록을 불러오지 못했습니다.")
	}

	vendors, err := s.repo.VendorsByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "찜 목록을 불러오지 못했습니다.")
	}
	return vendors, nil
}
