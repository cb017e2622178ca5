package controllers

import (
	"net/http"

	"github.com/haneulsoft/weddingmoa-backend/api/middleware"
	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/api/validators"
	"github.com/haneulsoft/weddingmoa-backend/internal/auth"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
)

// AuthController serves login, token refresh and logout.
type AuthController struct {
	svc  auth.Service
	logg *logger.Logger
}

func NewAuthController(svc auth.Service, logg *logger.Logger) *AuthController {
	return &AuthController{svc: svc, logg: logg}
}

// Login handles POST /auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body auth.LoginRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	result, err := c.svc.Login(r.Context(), body)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, result)
}

// Refresh handles POST /auth/refresh.
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var body auth.RefreshRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	result, err := c.svc.Refresh(r.Context(), body)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, result)
}

// Logout handles POST /auth/logout. Requires auth; revokes the live session.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	accessID, ok := middleware.AccessIDFromContext(r.Context())
	if !ok {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeUnauthorized, "로그인이 필요합니다."))
		return
	}

	if err := c.svc.Logout(r.Context(), accessID); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, map[string]bool{"loggedOut": true})
}
