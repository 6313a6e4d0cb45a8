package postgres

import (
	"strings"

	"gorm.io/gorm"

	"mentorhub/internal/errors"
)

// isUniqueConstraintViolation reports whether a write failed on a unique
// index. GORM translates the PostgreSQL error when the dialect supports it;
// the message check covers drivers that surface the raw SQLSTATE.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}
