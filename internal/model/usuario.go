package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users. Passwords are bcrypt hashes — never the
// plaintext value.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null;default:'user'"` // user | admin
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
}
