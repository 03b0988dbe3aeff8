package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases the domain part of an address while preserving
// the case of the local part. Addresses without an '@' are returned as-is;
// they fail validation elsewhere. Idempotent.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
