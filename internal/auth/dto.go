package auth

import (
	"github.com/haneulsoft/weddingmoa-backend/internal/users"
)

// LoginRequest carries the credentials for email/password authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the token pair and the authenticated profile.
type LoginResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	User         *users.UserDTO `json:"user"`
}

// RefreshRequest carries the expired (or expiring) access token and the
// refresh token it was issued with.
type RefreshRequest struct {
	AccessToken  string `json:"accessToken" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RefreshResponse returns the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
