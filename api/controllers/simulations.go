package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/api/middleware"
	"github.com/haneulsoft/weddingmoa-backend/api/responses"
	"github.com/haneulsoft/weddingmoa-backend/internal/simulator"
	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
	"github.com/haneulsoft/weddingmoa-backend/pkg/logger"
)

// maxUploadMemory bounds how much of the multipart form is buffered in memory.
const maxUploadMemory = 4 << 20

// SimulationsController accepts AI photo simulation uploads.
type SimulationsController struct {
	svc  simulator.Service
	logg *logger.Logger
}

func NewSimulationsController(svc simulator.Service, logg *logger.Logger) *SimulationsController {
	return &SimulationsController{svc: svc, logg: logg}
}

// Upload handles POST /simulations/upload with multipart fields "bride" and "groom".
func (c *SimulationsController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.Wrap(pkgerrors.CodeValidation, err, "multipart 요청이 올바르지 않습니다."))
		return
	}

	bride, brideHeader, err := r.FormFile("bride")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeValidation, "신부 사진(bride)이 필요합니다."))
		return
	}
	defer bride.Close()

	groom, groomHeader, err := r.FormFile("groom")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeValidation, "신랑 사진(groom)이 필요합니다."))
		return
	}
	defer groom.Close()

	var userID *uuid.UUID
	if id, ok := middleware.UserIDFromContext(r.Context()); ok {
		userID = &id
	}

	result, err := c.svc.Upload(r.Context(), simulator.UploadInput{
		UserID: userID,
		Bride:  simulator.UploadPart{Filename: brideHeader.Filename, Reader: bride},
		Groom:  simulator.UploadPart{Filename: groomHeader.Filename, Reader: groom},
	})
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteSuccessStatus(w, http.StatusAccepted, result)
}
