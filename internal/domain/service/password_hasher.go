// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "mentorhub/internal/domain/entity"

// PasswordHasher defines the interface for credential hashing and verification.
// This abstracts the underlying algorithm (e.g., bcrypt), keeping the domain pure.
// Both operations are qualified by the account they concern; the hashing
// primitive may ignore the identity, but a nil account is always an
// invalid-argument failure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Each call uses
	// fresh entropy: two hashes of the same password are never equal, and the
	// salt and work factor are embedded in the returned string.
	Hash(account *entity.Account, password string) (string, error)

	// Verify reports whether candidate, hashed with the salt and parameters
	// embedded in storedHash, matches storedHash. A malformed or foreign hash
	// is a verification failure (false), not an error.
	Verify(account *entity.Account, storedHash, candidate string) (bool, error)
}
