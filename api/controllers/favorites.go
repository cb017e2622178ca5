package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/api/middleware"
	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/internal/favorites"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
)

// FavoritesController manages the signed-in user's favorite vendors.
type FavoritesController struct {
	svc  favorites.Service
	logg *logger.Logger
}

func NewFavoritesController(svc favorites.Service, logg *logger.Logger) *FavoritesController {
	return &FavoritesController{svc: svc, logg: logg}
}

// Add handles POST /me/favorites/{vendorID}.
func (c *FavoritesController) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeUnauthorized, "로그인이 필요합니다."))
		return
	}

	vendorID, err := uuid.Parse(chi.URLParam(r, "vendorID"))
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeValidation, "업체 ID가 올바르지 않습니다."))
		return
	}

	if err := c.svc.Add(r.Context(), userID, vendorID); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccessStatus(w, http.StatusCreated, map[string]bool{"added": true})
}

// List handles GET /me/favorites.
func (c *FavoritesController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeUnauthorized, "로그인이 필요합니다."))
		return
	}

	vendors, err := c.svc.List(r.Context(), userID)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, vendors)
}
