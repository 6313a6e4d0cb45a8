// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mentorhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	FullName string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateInput defines the replaceable fields of an account. ID, CreatedAt and
// PasswordHash are never touched by an update.
type UpdateInput struct {
	Email    string
	FullName string
	Role     entity.Role
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
// Every operation is an independent, short-lived unit of work against the
// store; failures are synchronous typed outcomes and are never retried.
type AccountUsecase interface {
	// Register creates a new account after enforcing email uniqueness and
	// hashing the plaintext password.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a bearer token. An unknown email
	// and a wrong password are deliberately indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetByID retrieves an account by its numeric ID.
	GetByID(ctx context.Context, id int64) (*entity.Account, error)

	// GetByEmail retrieves an account by its exact email address.
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Update replaces exactly the email, full name and role of an existing
	// account. Last writer wins; there is no optimistic-concurrency token.
	Update(ctx context.Context, id int64, patch *UpdateInput) error

	// ValidatePassword checks a plaintext password against an account's
	// stored credential hash.
	ValidatePassword(ctx context.Context, account *entity.Account, password string) (bool, error)
}
