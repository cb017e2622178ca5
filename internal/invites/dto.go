package invites

import (
	"time"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/db/models"
)

// CreateInviteInput captures what an admin can scope an invite to.
type CreateInviteInput struct {
	Email         *string
	CategoryID    *uuid.UUID
	ExpiresInDays int
}

// CreatedInviteDTO is returned to the issuing admin. This is the only place
// the raw token leaves the system.
type CreatedInviteDTO struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	InviteURL string    `json:"inviteUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// InviteSnapshotDTO is the public validation response; it never echoes the token.
type InviteSnapshotDTO struct {
	Email      *string    `json:"email,omitempty"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	ExpiresAt  time.Time  `json:"expiresAt"`
}

func snapshotFromModel(invite *models.VendorInvite) *InviteSnapshotDTO {
	return &InviteSnapshotDTO{
		Email:      invite.Email,
		CategoryID: invite.CategoryID,
		ExpiresAt:  invite.ExpiresAt,
	}
}
