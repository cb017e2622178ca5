package favorites

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
)

type stubFavoritesRepo struct {
	active     bool
	appended   [][2]uuid.UUID
	counterFor []uuid.UUID
	ids        []uuid.UUID
	idsErr     error
	vendors    []models.Vendor
}

func (s *stubFavoritesRepo) VendorIsActive(ctx context.Context, vendorID uuid.UUID) (bool, error) {
	return s.active, nil
}

func (s *stubFavoritesRepo) AppendFavorite(ctx context.Context, userID, vendorID uuid.UUID) error {
	s.appended = append(s.appended, [2]uuid.UUID{userID, vendorID})
	return nil
}

func (s *stubFavoritesRepo) IncrementFavoriteCount(ctx context.Context, vendorID uuid.UUID) error {
	s.counterFor = append(s.counterFor, vendorID)
	return nil
}

func (s *stubFavoritesRepo) FavoriteVendorIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if s.idsErr != nil {
		return nil, s.idsErr
	}
	return s.ids, nil
}

func (s *stubFavoritesRepo) VendorsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Vendor, error) {
	return s.vendors, nil
}

func TestAddAppendsAndBumpsCounter(t *testing.T) {
	repo := &stubFavoritesRepo{active: true}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	userID, vendorID := uuid.New(), uuid.New()
	if err := svc.Add(context.Background(), userID, vendorID); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Favoriting twice appends twice: the embedded array keeps duplicates.
	if err := svc.Add(context.Background(), userID, vendorID); err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(repo.appended) != 2 {
		t.Fatalf("expected 2 appends, got %d", len(repo.appended))
	}
	if len(repo.counterFor) != 2 || repo.counterFor[0] != vendorID {
		t.Fatalf("counter not bumped per add: %v", repo.counterFor)
	}
}

func TestAddRejectsInactiveVendor(t *testing.T) {
	repo := &stubFavoritesRepo{active: false}
	svc, _ := NewService(repo)

	err := svc.Add(context.Background(), uuid.New(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(repo.appended) != 0 {
		t.Fatal("must not append for missing vendor")
	}
}

func TestListResolvesStoredIDs(t *testing.T) {
	vendorID := uuid.New()
	repo := &stubFavoritesRepo{
		ids:     []uuid.UUID{vendorID, vendorID},
		vendors: []models.Vendor{{ID: vendorID}},
	}
	svc, _ := NewService(repo)

	vendors, err := svc.List(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vendors) != 1 || vendors[0].ID != vendorID {
		t.Fatalf("unexpected vendors: %+v", vendors)
	}
}

func TestListUnknownUser(t *testing.T) {
	repo := &stubFavoritesRepo{idsErr: gorm.ErrRecordNotFound}
	svc, _ := NewService(repo)

	_, err := svc.List(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
