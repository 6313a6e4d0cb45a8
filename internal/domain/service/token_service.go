package service

import (
	"github.com/golang-jwt/jwt/v5"

	"mentorhub/internal/domain/entity"
)

// Claims defines the custom claims carried by issued bearer tokens.
type Claims struct {
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed, self-contained token for the given
	// identity. The token carries the email and role claims plus issued-at
	// and expiry times. It is valid from issuance until expiry; there is no
	// storage, revocation list, or refresh mechanism.
	IssueToken(email string, role entity.Role) (string, error)

	// ValidateToken checks the signature, expiry, issuer and audience of a
	// token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
