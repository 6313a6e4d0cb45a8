// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is the sole entity in the system, representing a registered identity.
// The ID is assigned by the store on creation and never reused or mutated.
type Account struct {
	ID           int64     // Numeric identifier, assigned by the store on creation.
	Email        string    // Login identifier, unique across all accounts (exact-match equality).
	PasswordHash string    // Opaque output of the credential hasher; never serialized outward.
	FullName     string    // Display name, required.
	Role         Role      // Closed role enumeration, defaults to RoleStudent.
	CreatedAt    time.Time // Set once by the store at creation, immutable thereafter.
}
