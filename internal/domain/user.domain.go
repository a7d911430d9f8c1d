package domain

import "time"

// User is a verified member of the network. The password hash never
// leaves the process: it is excluded from JSON output and stripped by
// Public() before the record crosses any outward surface.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	IsVerified   bool      `json:"isVerified"`
	IsAdmin      bool      `json:"isAdmin"`
	Avatar       string    `json:"avatar"`
	JoinedDate   time.Time `json:"joinedDate"`
}

// Public returns a copy of the user with the credential cleared.
func (u *User) Public() *User {
	cp := *u
	cp.PasswordHash = ""
	return &cp
}

// PendingVerification is a registration attempt awaiting its one-time
// code. Keyed by email; consumed on successful verification. Entries do
// not expire, and re-registering the same email overwrites the previous
// attempt.
type PendingVerification struct {
	Email     string
	Username  string
	Name      string
	Password  string // plaintext until verification hashes it
	Code      string
	CreatedAt time.Time
}
