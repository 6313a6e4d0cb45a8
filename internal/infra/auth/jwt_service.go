// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mentorhub/config"
	"mentorhub/internal/domain/entity"
	domainerrors "mentorhub/internal/domain/errors"
	"mentorhub/internal/domain/service"
	"mentorhub/internal/errors"
)

// tokenTTL is the fixed lifetime of issued tokens. The 2-hour expiry is part
// of the token contract consumed by other services; do not make it
// configurable without coordinating with them.
const tokenTTL = 2 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	key      []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.JWT == nil || cfg.JWT.Key == "" {
		return nil, errors.New("jwt signing key must be provided")
	}

	return &jwtService{
		key:      []byte(cfg.JWT.Key),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		now:      time.Now,
	}, nil
}

// IssueToken creates a signed HS256 token carrying the email and role claims,
// issued-at and a 2-hour expiry, with issuer and audience from configuration.
func (s *jwtService) IssueToken(email string, role entity.Role) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", domainerrors.ErrInvalidArgument.WrapMessage("email cannot be empty")
	}

	now := s.now()
	claims := &service.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature, expiry, issuer and audience of a token
// string and returns its claims. Issuer and audience are only enforced when
// configured; an empty config value skips that check.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.key, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
