package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateName(ctx context.Context, email, name string) error
	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
}

type ResetTokenRepository interface {
	StoreResetToken(ctx context.Context, prt *PasswordResetToken) error
	GetResetToken(ctx context.Context, token string) (*PasswordResetToken, error)
	// ConsumeResetToken deletes the token row and overwrites the owning
	// user's password hash in a single transaction. It fails with
	// ErrInvalidResetToken when the row was already consumed.
	ConsumeResetToken(ctx context.Context, tokenID, email, passwordHash string) error
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type Notifier interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
