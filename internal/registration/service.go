package registration

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/haneulsoft/weddingmoa-backend/internal/invites"
	"github.com/haneulsoft/weddingmoa-backend/internal/users"
	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/security"
	"github.com/haneulsoft/weddingmoa-backend/pkg/slug"
)

type registerInviteRepository interface {
	FindByToken(ctx context.Context, token string) (*models.VendorInvite, error)
	Consume(ctx context.Context, id uuid.UUID, usedBy uuid.UUID, at time.Time) (bool, error)
}

type registerUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

type registerVendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
}

// Service handles the invite-gated vendor onboarding transaction.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResultDTO, error)
}

// ServiceParams packages the dependencies for the registration flow. The repo
// factories receive the transaction handle so every write shares its fate.
type ServiceParams struct {
	TxRunner          db.TxRunner
	InviteRepoFactory func(tx *gorm.DB) registerInviteRepository
	UserRepoFactory   func(tx *gorm.DB) registerUserRepository
	VendorRepoFactory func(tx *gorm.DB) registerVendorRepository
	PasswordConfig    config.PasswordConfig
}

type service struct {
	tx          db.TxRunner
	inviteRepo  func(tx *gorm.DB) registerInviteRepository
	userRepo    func(tx *gorm.DB) registerUserRepository
	vendorRepo  func(tx *gorm.DB) registerVendorRepository
	passwordCfg config.PasswordConfig
	nowFunc     func() time.Time
}

// NewService builds a registration service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.TxRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	if params.InviteRepoFactory == nil {
		params.InviteRepoFactory = func(tx *gorm.DB) registerInviteRepository {
			return invites.NewRepository(tx)
		}
	}
	if params.UserRepoFactory == nil {
		params.UserRepoFactory = func(tx *gorm.DB) registerUserRepository {
			return users.NewRepository(tx)
		}
	}
	if params.VendorRepoFactory == nil {
		params.VendorRepoFactory = func(tx *gorm.DB) registerVendorRepository {
			return vendorWriter{tx: tx}
		}
	}
	return &service{
		tx:          params.TxRunner,
		inviteRepo:  params.InviteRepoFactory,
		userRepo:    params.UserRepoFactory,
		vendorRepo:  params.VendorRepoFactory,
		passwordCfg: params.PasswordConfig,
		nowFunc:     time.Now,
	}, nil
}

// vendorWriter is the default vendor persistence for the onboarding flow; the
// catalog repo is read-only on purpose.
type vendorWriter struct {
	tx *gorm.DB
}

func (w vendorWriter) Create(ctx context.Context, vendor *models.Vendor) error {
	return w.tx.WithContext(ctx).Create(vendor).Error
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*RegisterResultDTO, error) {
	token := strings.TrimSpace(req.InviteToken)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "초대 토큰이 필요합니다.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Owner.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "이메일이 필요합니다.")
	}
	if req.Owner.Name == "" || req.Owner.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "대표자 정보가 누락되었습니다.")
	}
	if req.Vendor.Name == "" || req.Vendor.Location == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "업체 정보가 누락되었습니다.")
	}
	if req.Vendor.CategoryID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "카테고리를 선택해 주세요.")
	}
	if req.Vendor.PriceMin != nil && req.Vendor.PriceMax != nil && *req.Vendor.PriceMin > *req.Vendor.PriceMax {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "최소 가격이 최대 가격보다 클 수 없습니다.")
	}

	passwordHash, err := security.HashPassword(req.Owner.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "비밀번호를 처리하지 못했습니다.")
	}

	var result *RegisterResultDTO
	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		inviteRepo := s.inviteRepo(tx)
		userRepo := s.userRepo(tx)
		vendorRepo := s.vendorRepo(tx)

		invite, err := inviteRepo.FindByToken(ctx, token)
		if err != nil {
			if db.IsNotFound(err) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "유효하지 않은 초대 링크입니다.")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "초대를 확인하지 못했습니다.")
		}
		if invite.IsConsumed() {
			return pkgerrors.New(pkgerrors.CodeGone, "이미 사용된 초대 링크입니다.")
		}
		if invite.IsExpired(s.nowFunc()) {
			return pkgerrors.New(pkgerrors.CodeGone, "만료된 초대 링크입니다.")
		}
		if invite.Email != nil && !strings.EqualFold(*invite.Email, email) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "초대된 이메일로만 가입할 수 있습니다.")
		}

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "이미 가입된 이메일입니다.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "이메일 중복을 확인하지 못했습니다.")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			PasswordHash: passwordHash,
			Name:         req.Owner.Name,
			Phone:        req.Owner.Phone,
			Role:         enums.UserRoleVendor,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "계정을 생성하지 못했습니다.")
		}

		categoryID := req.Vendor.CategoryID
		if invite.CategoryID != nil {
			categoryID = *invite.CategoryID
		}

		vendor := &models.Vendor{
			CategoryID:    categoryID,
			OwnerID:       &user.ID,
			Name:          req.Vendor.Name,
			Slug:          slug.Generate(req.Vendor.Name, s.nowFunc()),
			Description:   req.Vendor.Description,
			Phone:         req.Vendor.Phone,
			Email:         req.Vendor.Email,
			Website:       req.Vendor.Website,
			Location:      req.Vendor.Location,
			PriceRange:    req.Vendor.PriceRange,
			PriceMin:      req.Vendor.PriceMin,
			PriceMax:      req.Vendor.PriceMax,
			BusinessHours: req.Vendor.BusinessHours,
			IsVerified:    false,
			IsActive:      true,
			IsPremium:     false,
		}
		if req.Owner.BusinessNumber != nil {
			vendor.Metadata = map[string]any{"businessNumber": *req.Owner.BusinessNumber}
		}
		if err := vendorRepo.Create(ctx, vendor); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "업체를 생성하지 못했습니다.")
		}

		consumed, err := inviteRepo.Consume(ctx, invite.ID, user.ID, s.nowFunc())
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "초대를 사용 처리하지 못했습니다.")
		}
		if !consumed {
			// A concurrent registration got here first; undo everything.
			return pkgerrors.New(pkgerrors.CodeGone, "이미 사용된 초대 링크입니다.")
		}

		result = &RegisterResultDTO{
			UserID:     user.ID,
			VendorID:   vendor.ID,
			VendorSlug: vendor.Slug,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return result, nil
}
