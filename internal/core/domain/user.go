package domain

import "time"

// User is the sole persistent entity: an account identified by email.
// PasswordHash is the opaque bcrypt output and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
