package models

import "time"

// User is an account holder. The ledger only cares about the ID; the
// rest belongs to the user directory.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  []byte    `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
}
