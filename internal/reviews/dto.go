package reviews

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDTO is a review joined with the author's display name for vendor
// detail pages.
type ReviewDTO struct {
	ID             uuid.UUID `json:"id"`
	VendorID       uuid.UUID `json:"vendorId"`
	UserID         uuid.UUID `json:"userId"`
	UserName       string    `json:"userName"`
	Rating         int       `json:"rating"`
	Content        string    `json:"content"`
	VendorResponse *string   `json:"vendorResponse,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
