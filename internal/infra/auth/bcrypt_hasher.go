// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mentorhub/config"
	"mentorhub/internal/domain/entity"
	domainerrors "mentorhub/internal/domain/errors"
	"mentorhub/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The work factor comes
// from the auth.bcryptCost config value, falling back to bcrypt's default.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherWithCost constructs a hasher with an explicit work factor.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt mixes a fresh random salt into every call, so hashing the same
// password twice yields different strings that both verify.
func (h *bcryptHasher) Hash(account *entity.Account, password string) (string, error) {
	if account == nil {
		return "", domainerrors.ErrInvalidArgument.WrapMessage("account cannot be nil")
	}
	if strings.TrimSpace(password) == "" {
		return "", domainerrors.ErrInvalidArgument.WrapMessage("password cannot be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Verify compares a candidate password with a stored bcrypt hash.
// bcrypt's comparison does not leak which byte first differs. A hash in a
// foreign or corrupted format verifies as false rather than erroring.
func (h *bcryptHasher) Verify(account *entity.Account, storedHash, candidate string) (bool, error) {
	if account == nil {
		return false, domainerrors.ErrInvalidArgument.WrapMessage("account cannot be nil")
	}
	if strings.TrimSpace(storedHash) == "" || strings.TrimSpace(candidate) == "" {
		return false, domainerrors.ErrInvalidArgument.WrapMessage("stored hash and candidate password must be non-empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate))

	return err == nil, nil
}
