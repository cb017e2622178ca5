package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/api/middleware"
	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/api/validators"
	"github.com/haneulsoft/weddingmoa-backend/internal/invites"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
)

// InvitesController issues and validates vendor registration invites.
type InvitesController struct {
	svc  invites.Service
	logg *logger.Logger
}

func NewInvitesController(svc invites.Service, logg *logger.Logger) *InvitesController {
	return &InvitesController{svc: svc, logg: logg}
}

type createInviteBody struct {
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	ExpiresInDays int        `json:"expiresInDays,omitempty" validate:"omitempty,min=1"`
}

// Create handles POST /admin/vendor-invites. Admin-only; the route is gated
// by RequireRole upstream.
func (c *InvitesController) Create(w http.ResponseWriter, r *http.Request) {
	var body createInviteBody
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	adminID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeUnauthorized, "로그인이 필요합니다."))
		return
	}

	created, err := c.svc.Create(r.Context(), adminID, invites.CreateInviteInput{
		Email:         body.Email,
		CategoryID:    body.CategoryID,
		ExpiresInDays: body.ExpiresInDays,
	})
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccessStatus(w, http.StatusCreated, created)
}

// Validate handles GET /vendor-invites/validate?token=. It is public so the
// registration page can check a link before showing the form.
func (c *InvitesController) Validate(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.svc.Validate(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccess(w, snapshot)
}
