package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredential    = errors.New("invalid credential")
	ErrExpiredCredential    = errors.New("expired credential")
	ErrInvalidResetToken    = errors.New("invalid reset token")
	ErrResetTokenExpired    = errors.New("reset token expired")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrOldPasswordMismatch  = errors.New("old password does not match")
)
