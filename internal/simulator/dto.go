package simulator

import (
	"io"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
)

// UploadPart is one image file from the multipart form.
type UploadPart struct {
	Filename string
	Reader   io.Reader
}

// UploadInput carries the bride and groom photos. The simulator is anonymous
// friendly; UserID is set only for signed-in requests.
type UploadInput struct {
	UserID *uuid.UUID
	Bride  UploadPart
	Groom  UploadPart
}

// UploadResultDTO reports where the inputs landed and the pending simulation.
type UploadResultDTO struct {
	SimulationID  uuid.UUID              `json:"simulationId"`
	BrideImageURL string                 `json:"brideImageUrl"`
	GroomImageURL string                 `json:"groomImageUrl"`
	Status        enums.SimulationStatus `json:"status"`
}
