package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
)

// AccessTokenPayload carries the identity minted into an access token.
type AccessTokenPayload struct {
	UserID uuid.UUID
	Role   enums.UserRole
	JTI    string
}

// AccessTokenClaims is the JWT claims shape for API access tokens.
type AccessTokenClaims struct {
	UserID uuid.UUID      `json:"uid"`
	Role   enums.UserRole `json:"role"`
	jwt.RegisteredClaims
}
