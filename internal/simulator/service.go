package simulator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
)

type simulationRepository interface {
	Create(ctx context.Context, result *models.SimulationResult) error
}

// Service accepts simulation uploads. Generation itself is not implemented;
// every accepted request is stored as PENDING.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResultDTO, error)
}

type service struct {
	repo  simulationRepository
	store BlobStore
	cfg   config.MediaConfig
}

// NewService builds the simulator upload service.
func NewService(repo simulationRepository, store BlobStore, cfg config.MediaConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("simulation repository required")
	}
	if store == nil {
		return nil, fmt.Errorf("blob store required")
	}
	return &service{repo: repo, store: store, cfg: cfg}, nil
}

func (s *service) Upload(ctx context.Context, input UploadInput) (*UploadResultDTO, error) {
	if input.Bride.Reader == nil || input.Groom.Reader == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "신부와 신랑 사진이 모두 필요합니다.")
	}

	brideURL, err := s.storeImage(ctx, input.Bride)
	if err != nil {
		return nil, err
	}
	groomURL, err := s.storeImage(ctx, input.Groom)
	if err != nil {
		return nil, err
	}

	result := &models.SimulationResult{
		UserID:        input.UserID,
		BrideImageURL: brideURL,
		GroomImageURL: groomURL,
		Status:        enums.SimulationStatusPending,
	}
	if err := s.repo.Create(ctx, result); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "시뮬레이션 요청을 저장하지 못했습니다.")
	}

	return &UploadResultDTO{
		SimulationID:  result.ID,
		BrideImageURL: brideURL,
		GroomImageURL: groomURL,
		Status:        result.Status,
	}, nil
}

// storeImage enforces the size cap, sniffs the real content type, and writes
// the blob under a server-generated name.
func (s *service) storeImage(ctx context.Context, part UploadPart) (string, error) {
	maxBytes := s.cfg.MaxSizeBytes

	data, err := io.ReadAll(io.LimitReader(part.Reader, maxBytes+1))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "업로드 파일을 읽지 못했습니다.")
	}
	if len(data) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "빈 파일은 업로드할 수 없습니다.")
	}
	if int64(len(data)) > maxBytes {
		return "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("파일 크기는 최대 %dMB입니다.", maxBytes/(1024*1024)))
	}

	// Trust the bytes, not the client headers.
	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "이미지 파일만 업로드할 수 있습니다.")
	}

	name := uuid.NewString() + detected.Extension()
	if err := s.store.Save(ctx, name, data); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "파일을 저장하지 못했습니다.")
	}

	return strings.TrimRight(s.cfg.PublicPrefix, "/") + "/" + name, nil
}
