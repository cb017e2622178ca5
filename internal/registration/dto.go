package registration

import (
	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/types"
)

// OwnerInput is the account half of a vendor registration.
type OwnerInput struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          *string `json:"phone,omitempty"`
	Password       string  `json:"password" validate:"required,min=8"`
	BusinessNumber *string `json:"businessNumber,omitempty"`
}

// VendorInput is the listing half of a vendor registration.
type VendorInput struct {
	Name          string              `json:"name" validate:"required"`
	CategoryID    uuid.UUID           `json:"categoryId" validate:"required"`
	Description   *string             `json:"description,omitempty"`
	Location      string              `json:"location" validate:"required"`
	Phone         *string             `json:"phone,omitempty"`
	Email         *string             `json:"email,omitempty"`
	Website       *string             `json:"website,omitempty"`
	PriceRange    *string             `json:"priceRange,omitempty"`
	PriceMin      *int                `json:"priceMin,omitempty"`
	PriceMax      *int                `json:"priceMax,omitempty"`
	BusinessHours types.BusinessHours `json:"businessHours,omitempty"`
}

// RegisterRequest contains the payload required for onboarding a new vendor.
type RegisterRequest struct {
	InviteToken string      `json:"inviteToken" validate:"required"`
	Owner       OwnerInput  `json:"owner" validate:"required"`
	Vendor      VendorInput `json:"vendor" validate:"required"`
}

// RegisterResultDTO reports what the onboarding transaction created.
type RegisterResultDTO struct {
	UserID     uuid.UUID `json:"userId"`
	VendorID   uuid.UUID `json:"vendorId"`
	VendorSlug string    `json:"vendorSlug"`
}
