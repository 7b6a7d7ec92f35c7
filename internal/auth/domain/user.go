package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	RoleID       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}

// PasswordResetToken is a single-use credential-recovery token. The token
// column is unique in storage; consumption deletes the row. An expired row
// stays in storage until the sweeper removes it.
type PasswordResetToken struct {
	ID        string
	Token     string
	Email     string
	ExpiresAt time.Time
}
