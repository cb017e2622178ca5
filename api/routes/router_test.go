package routes

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/haneulsoft/weddingmoa-backend/api/controllers"
	internalauth "github.com/haneulsoft/weddingmoa-backend/internal/auth"
	"github.com/haneulsoft/weddingmoa-backend/internal/catalog"
	"github.com/haneulsoft/weddingmoa-backend/internal/invites"
	"github.com/haneulsoft/weddingmoa-backend/internal/registration"
	"github.com/haneulsoft/weddingmoa-backend/internal/simulator"
	pkgauth "github.com/haneulsoft/weddingmoa-backend/pkg/auth"
	"github.com/haneulsoft/weddingmoa-backend/pkg/config"
	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
	"github.com/haneulsoft/weddingmoa-backend/pkg/metrics"
	"github.com/haneulsoft/weddingmoa-backend/pkg/pagination"
)

type fakeCatalog struct{}

func (fakeCatalog) List(context.Context, catalog.ListVendorsInput) ([]models.Vendor, pagination.Meta, error) {
	return []models.Vendor{}, pagination.Meta{}, nil
}
func (fakeCatalog) ListByCategorySlug(context.Context, string, catalog.ListVendorsInput) ([]models.Vendor, pagination.Meta, error) {
	return []models.Vendor{}, pagination.Meta{}, nil
}
func (fakeCatalog) GetByID(context.Context, uuid.UUID) (*catalog.VendorDetailDTO, error) {
	return &catalog.VendorDetailDTO{}, nil
}
func (fakeCatalog) Categories(context.Context) ([]catalog.CategoryWithCountDTO, error) {
	return nil, nil
}

type fakeInvites struct{}

func (fakeInvites) Create(context.Context, uuid.UUID, invites.CreateInviteInput) (*invites.CreatedInviteDTO, error) {
	return &invites.CreatedInviteDTO{}, nil
}
func (fakeInvites) Validate(context.Context, string) (*invites.InviteSnapshotDTO, error) {
	return &invites.InviteSnapshotDTO{}, nil
}

type fakeRegistration struct{}

func (fakeRegistration) Register(context.Context, registration.RegisterRequest) (*registration.RegisterResultDTO, error) {
	return &registration.RegisterResultDTO{}, nil
}

type fakeAuth struct{}

func (fakeAuth) Login(context.Context, internalauth.LoginRequest) (*internalauth.LoginResponse, error) {
	return &internalauth.LoginResponse{}, nil
}
func (fakeAuth) Refresh(context.Context, internalauth.RefreshRequest) (*internalauth.RefreshResponse, error) {
	return &internalauth.RefreshResponse{}, nil
}
func (fakeAuth) Logout(context.Context, string) error { return nil }

type fakeFavorites struct{}

func (fakeFavorites) Add(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (fakeFavorites) List(context.Context, uuid.UUID) ([]models.Vendor, error) {
	return nil, nil
}

type fakeSimulator struct {
	lastUser *uuid.UUID
}

func (f *fakeSimulator) Upload(_ context.Context, in simulator.UploadInput) (*simulator.UploadResultDTO, error) {
	f.lastUser = in.UserID
	return &simulator.UploadResultDTO{}, nil
}

type fakeSessions struct{}

func (fakeSessions) HasSession(context.Context, string) (bool, error) { return true, nil }

func testRouter(t *testing.T) http.Handler {
	router, _ := testRouterWithSimulator(t)
	return router
}

func testRouterWithSimulator(t *testing.T) (http.Handler, *fakeSimulator) {
	t.Helper()
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "weddingmoa",
			ExpirationMinutes: 15,
		},
	}

	sim := &fakeSimulator{}
	registry := prometheus.NewRegistry()
	return New(Deps{
		Config:      cfg,
		Sessions:    fakeSessions{},
		Metrics:     metrics.NewHTTPMetrics(registry),
		Registry:    registry,
		Health:      controllers.NewHealthController(nil, nil, nil),
		Vendors:     controllers.NewVendorsController(fakeCatalog{}, nil),
		Invites:     controllers.NewInvitesController(fakeInvites{}, nil),
		Register:    controllers.NewRegisterController(fakeRegistration{}, nil),
		Auth:        controllers.NewAuthController(fakeAuth{}, nil),
		Favorites:   controllers.NewFavoritesController(fakeFavorites{}, nil),
		Simulations: controllers.NewSimulationsController(sim, nil),
	}), sim
}

func simulationUpload(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, field := range []string{"bride", "groom"} {
		part, err := writer.CreateFormFile(field, field+".jpg")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if _, err := part.Write([]byte("jpeg-bytes")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestPublicRoutes(t *testing.T) {
	router := testRouter(t)

	public := []string{
		"/health/live",
		"/health/ready",
		"/metrics",
		"/api/v1/vendors",
		"/api/v1/vendors/categories",
		"/api/v1/vendors/category/studio",
		"/api/v1/vendor-invites/validate?token=x",
	}
	for _, path := range public {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := testRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/me/favorites"},
		{"POST", "/api/v1/me/favorites/" + uuid.NewString()},
		{"POST", "/api/v1/auth/logout"},
		{"POST", "/api/v1/admin/vendor-invites"},
	}
	for _, tc := range protected {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestAdminRouteRejectsCustomers(t *testing.T) {
	router := testRouter(t)

	token, err := pkgauth.MintAccessToken(config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "weddingmoa",
		ExpirationMinutes: 15,
	}, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleCustomer,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/v1/admin/vendor-invites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", rec.Code)
	}
}

func TestSimulationUploadLinksUserWhenTokenPresent(t *testing.T) {
	router, sim := testRouterWithSimulator(t)
	userID := uuid.New()

	token, err := pkgauth.MintAccessToken(config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "weddingmoa",
		ExpirationMinutes: 15,
	}, time.Now(), pkgauth.AccessTokenPayload{
		UserID: userID,
		Role:   enums.UserRoleCustomer,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	body, contentType := simulationUpload(t)
	req := httptest.NewRequest("POST", "/api/v1/simulations/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d body=%s", rec.Code, rec.Body.String())
	}
	if sim.lastUser == nil || *sim.lastUser != userID {
		t.Fatalf("expected upload linked to %s, got %v", userID, sim.lastUser)
	}
}

func TestSimulationUploadStaysAnonymousWithoutToken(t *testing.T) {
	router, sim := testRouterWithSimulator(t)

	body, contentType := simulationUpload(t)
	req := httptest.NewRequest("POST", "/api/v1/simulations/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d body=%s", rec.Code, rec.Body.String())
	}
	if sim.lastUser != nil {
		t.Fatalf("anonymous upload must not carry a user, got %v", sim.lastUser)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("GET", "/health/live", nil)
	req.Header.Set("X-Request-Id", "req-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "req-abc" {
		t.Fatalf("request id not echoed, got %q", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health/live", nil))
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("request id must be minted when absent")
	}
}
