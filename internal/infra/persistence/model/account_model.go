// Package model contains the GORM persistence models mirroring database tables.
package model

import (
	"time"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL assigns IDs via the
// bigserial sequence; CreatedAt is filled by GORM on insert and never updated.
type AccountModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:Student"`
	CreatedAt    time.Time `gorm:"autoCreateTime;<-:create"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
