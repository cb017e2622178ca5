package invites

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
)

const tokenBytes = 32

type inviteRepository interface {
	Create(ctx context.Context, invite *models.VendorInvite) error
	FindByToken(ctx context.Context, token string) (*models.VendorInvite, error)
}

// Service issues and validates vendor registration invites.
type Service interface {
	Create(ctx context.Context, adminID uuid.UUID, input CreateInviteInput) (*CreatedInviteDTO, error)
	Validate(ctx context.Context, token string) (*InviteSnapshotDTO, error)
}

type service struct {
	repo    inviteRepository
	appCfg  config.AppConfig
	cfg     config.InviteConfig
	nowFunc func() time.Time
}

// NewService builds an invite service.
func NewService(repo inviteRepository, appCfg config.AppConfig, cfg config.InviteConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("invite repository required")
	}
	return &service{
		repo:    repo,
		appCfg:  appCfg,
		cfg:     cfg,
		nowFunc: time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, adminID uuid.UUID, input CreateInviteInput) (*CreatedInviteDTO, error) {
	if adminID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "로그인이 필요합니다.")
	}

	days := input.ExpiresInDays
	if days <= 0 {
		days = s.cfg.DefaultExpiryDays
	}
	if days > s.cfg.MaxExpiryDays {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("초대 유효기간은 최대 %d일입니다.", s.cfg.MaxExpiryDays))
	}

	token, err := generateToken()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "초대 토큰을 생성하지 못했습니다.")
	}

	invite := &models.VendorInvite{
		Token:      token,
		Email:      normalizeEmail(input.Email),
		CategoryID: input.CategoryID,
		ExpiresAt:  s.nowFunc().Add(time.Duration(days) * 24 * time.Hour),
		CreatedBy:  adminID,
	}
	if err := s.repo.Create(ctx, invite); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "초대를 생성하지 못했습니다.")
	}

	return &CreatedInviteDTO{
		ID:        invite.ID,
		Token:     token,
		InviteURL: fmt.Sprintf("%s/vendor-register?token=%s", strings.TrimRight(s.appCfg.BaseURL, "/"), token),
		ExpiresAt: invite.ExpiresAt,
	}, nil
}

func (s *service) Validate(ctx context.Context, token string) (*InviteSnapshotDTO, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "초대 토큰이 필요합니다.")
	}

	invite, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "유효하지 않은 초대 링크입니다.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "초대를 확인하지 못했습니다.")
	}

	if invite.IsConsumed() {
		return nil, pkgerrors.New(pkgerrors.CodeGone, "이미 사용된 초대 링크입니다.")
	}
	if invite.IsExpired(s.nowFunc()) {
		return nil, pkgerrors.New(pkgerrors.CodeGone, "만료된 초대 링크입니다.")
	}

	return snapshotFromModel(invite), nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	if normalized == "" {
		return nil
	}
	return &normalized
}
