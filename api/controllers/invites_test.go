package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/api/middleware"
	"github.com/haneulsoft/weddingmoa-backend/internal/invites"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
)

type stubInviteService struct {
	lastAdmin uuid.UUID
	lastInput invites.CreateInviteInput
	created   *invites.CreatedInviteDTO
	snapshot  *invites.InviteSnapshotDTO
	err       error
}

func (s *stubInviteService) Create(_ context.Context, adminID uuid.UUID, input invites.CreateInviteInput) (*invites.CreatedInviteDTO, error) {
	s.lastAdmin = adminID
	s.lastInput = input
	return s.created, s.err
}

func (s *stubInviteService) Validate(_ context.Context, token string) (*invites.InviteSnapshotDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func TestInvitesCreateUsesContextAdmin(t *testing.T) {
	adminID := uuid.New()
	svc := &stubInviteService{
		created: &invites.CreatedInviteDTO{
			ID:        uuid.New(),
			Token:     strings.Repeat("ab", 32),
			InviteURL: "http://localhost:3000/vendor-register?token=x",
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		},
	}
	c := NewInvitesController(svc, nil)

	req := httptest.NewRequest("POST", "/admin/vendor-invites",
		strings.NewReader(`{"email":"new-vendor@example.com","expiresInDays":14}`))
	req = req.WithContext(middleware.WithUserID(req.Context(), adminID))
	rec := httptest.NewRecorder()
	c.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastAdmin != adminID {
		t.Fatalf("admin not taken from context, got %s", svc.lastAdmin)
	}
	if svc.lastInput.Email == nil || *svc.lastInput.Email != "new-vendor@example.com" {
		t.Fatalf("email not passed: %+v", svc.lastInput.Email)
	}
	if svc.lastInput.ExpiresInDays != 14 {
		t.Fatalf("expiry not passed: %d", svc.lastInput.ExpiresInDays)
	}

	var body struct {
		Data invites.CreatedInviteDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Token == "" || body.Data.InviteURL == "" {
		t.Fatalf("created invite must expose token and url: %+v", body.Data)
	}
}

func TestInvitesCreateWithoutIdentity(t *testing.T) {
	c := NewInvitesController(&stubInviteService{}, nil)

	req := httptest.NewRequest("POST", "/admin/vendor-invites", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	c.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestInvitesValidateConsumedIsGone(t *testing.T) {
	svc := &stubInviteService{err: pkgerrors.New(pkgerrors.CodeGone, "이미 사용된 초대 링크입니다.")}
	c := NewInvitesController(svc, nil)
	r := chi.NewRouter()
	r.Get("/vendor-invites/validate", c.Validate)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/vendor-invites/validate?token=used", nil))

	if rec.Code != http.StatusGone {
		t.Fatalf("expected 410, got %d", rec.Code)
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "GONE" || body.Error.Message != "이미 사용된 초대 링크입니다." {
		t.Fatalf("unexpected error body %+v", body.Error)
	}
}

func TestInvitesValidateNeverEchoesToken(t *testing.T) {
	email := "invited@example.com"
	svc := &stubInviteService{snapshot: &invites.InviteSnapshotDTO{
		Email:     &email,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}}
	c := NewInvitesController(svc, nil)

	rec := httptest.NewRecorder()
	c.Validate(rec, httptest.NewRequest("GET", "/vendor-invites/validate?token=secret-token", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret-token") {
		t.Fatal("validation response must not echo the token")
	}
}
