package domain

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and must never
// leave the persistence/auth layers.
type User struct {
	ID           UserID
	Name         string
	Email        string
	PasswordHash string

	CreatedAt time.Time
}
