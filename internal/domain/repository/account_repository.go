// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mentorhub/internal/domain/entity"
)

// Domain-specific errors for account persistence.
// The application layer handles these outcomes without depending on
// database-specific errors.
var (
	// ErrAccountNotFound is returned when an account is not found.
	// Absence is a typed outcome, never a silent nil.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailTaken is returned when the store's unique constraint on email
	// rejects a write. The constraint is the final arbiter of the
	// check-then-insert race; the service-level pre-check is an optimization.
	ErrEmailTaken = errors.New("email is already taken")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByEmail retrieves a single account by its exact email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account, filling in the store-assigned ID and
	// CreatedAt on success.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account in the storage.
	Update(ctx context.Context, account *entity.Account) error
}
