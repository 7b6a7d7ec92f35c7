package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/arvndkumar/UserService/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/arvndkumar/UserService/internal/errors"
)

type TokenGenerator interface {
	GenerateAccessToken(email string) (string, time.Time, error)
	GenerateRefreshToken(email string) (string, time.Time, error)
	ExtractSubject(tokenString string) (string, error)
	IsValid(tokenString, expectedSubject string) bool
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

// TokenService signs and verifies access and refresh tokens with a single
// process-wide HMAC secret. The secret is set once at construction and never
// mutated afterwards.
type TokenService struct {
	SigningSecret      string
	Issuer             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

func NewTokenService(signingSecret, issuer string, accessExpiry, refreshExpiry time.Duration) *TokenService {
	return &TokenService{
		SigningSecret:      signingSecret,
		Issuer:             issuer,
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: refreshExpiry,
	}
}

func (ts *TokenService) GenerateAccessToken(email string) (string, time.Time, error) {
	return ts.generate(email, ts.AccessTokenExpiry)
}

func (ts *TokenService) GenerateRefreshToken(email string) (string, time.Time, error) {
	return ts.generate(email, ts.RefreshTokenExpiry)
}

func (ts *TokenService) generate(email string, expiry time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)

	claims := jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    ts.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.SigningSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ExtractSubject verifies the token's signature and expiry and returns its
// subject. Expiry failures are distinguished from every other failure so
// callers can report them separately.
func (ts *TokenService) ExtractSubject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.SigningSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", autherror.ErrExpiredCredential
		}
		return "", autherror.ErrInvalidCredential
	}

	if !token.Valid {
		return "", autherror.ErrInvalidCredential
	}

	return claims.Subject, nil
}

// IsValid collapses any verification failure into false for call sites that
// only need a yes/no gate.
func (ts *TokenService) IsValid(tokenString, expectedSubject string) bool {
	subject, err := ts.ExtractSubject(tokenString)
	if err != nil {
		return false
	}

	return subject == expectedSubject
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}
