package controllers

import (
	"net/http"

	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/api/validators"
	"github.com/haneulsoft/weddingmoa-backend/internal/registration"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
)

// RegisterController onboards invited vendors.
type RegisterController struct {
	svc  registration.Service
	logg *logger.Logger
}

func NewRegisterController(svc registration.Service, logg *logger.Logger) *RegisterController {
	return &RegisterController{svc: svc, logg: logg}
}

// Register handles POST /vendor-register.
func (c *RegisterController) Register(w http.ResponseWriter, r *http.Request) {
	var body registration.RegisterRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	result, err := c.svc.Register(r.Context(), body)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccessStatus(w, http.StatusCreated, result)
}
