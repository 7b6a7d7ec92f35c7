package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/arvndkumar/UserService/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name          string
		signingSecret string
		issuer        string
		accessExpiry  time.Duration
		refreshExpiry time.Duration
	}{
		{
			name:          "valid parameters",
			signingSecret: "signing-secret-key",
			issuer:        "user-service",
			accessExpiry:  15 * time.Minute,
			refreshExpiry: 7 * 24 * time.Hour,
		},
		{
			name:          "empty secret",
			signingSecret: "",
			issuer:        "",
			accessExpiry:  30 * time.Minute,
			refreshExpiry: 48 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.signingSecret, tt.issuer, tt.accessExpiry, tt.refreshExpiry)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.signingSecret, ts.SigningSecret)
			assert.Equal(t, tt.issuer, ts.Issuer)
			assert.Equal(t, tt.accessExpiry, ts.AccessTokenExpiry)
			assert.Equal(t, tt.refreshExpiry, ts.RefreshTokenExpiry)
		})
	}
}

func TestTokenService_Generate(t *testing.T) {
	tests := []struct {
		name          string
		signingSecret string
		issuer        string
		accessExpiry  time.Duration
		refreshExpiry time.Duration
		email         string
	}{
		{
			name:          "successful token generation",
			signingSecret: "test-signing-secret-key-123",
			issuer:        "user-service",
			accessExpiry:  15 * time.Minute,
			refreshExpiry: 24 * time.Hour,
			email:         "test@example.com",
		},
		{
			name:          "short secret still signs",
			signingSecret: "x",
			issuer:        "auth.example.com",
			accessExpiry:  30 * time.Minute,
			refreshExpiry: 48 * time.Hour,
			email:         "admin@example.com",
		},
		{
			name:          "empty subject",
			signingSecret: "test-signing-secret-key-123",
			issuer:        "user-service",
			accessExpiry:  15 * time.Minute,
			refreshExpiry: 24 * time.Hour,
			email:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.signingSecret, tt.issuer, tt.accessExpiry, tt.refreshExpiry)

			beforeGenerate := time.Now()
			accessToken, accessExpiresAt, err := ts.GenerateAccessToken(tt.email)
			require.NoError(t, err)
			refreshToken, refreshExpiresAt, err := ts.GenerateRefreshToken(tt.email)
			require.NoError(t, err)
			afterGenerate := time.Now()

			assert.NotEmpty(t, accessToken)
			assert.NotEmpty(t, refreshToken)

			assert.True(t, accessExpiresAt.After(beforeGenerate.Add(tt.accessExpiry).Add(-time.Second)))
			assert.True(t, accessExpiresAt.Before(afterGenerate.Add(tt.accessExpiry).Add(time.Second)))
			assert.True(t, refreshExpiresAt.After(accessExpiresAt))

			// Parse both tokens back and check the claim set.
			for _, token := range []string{accessToken, refreshToken} {
				claims := &jwt.RegisteredClaims{}
				parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
					return []byte(tt.signingSecret), nil
				})
				require.NoError(t, err)
				assert.True(t, parsed.Valid)
				assert.Equal(t, tt.email, claims.Subject)
				assert.Equal(t, tt.issuer, claims.Issuer)
				assert.True(t, claims.ExpiresAt.After(beforeGenerate))
			}
		})
	}
}

func TestTokenService_ExtractSubject_RoundTrip(t *testing.T) {
	ts := NewTokenService("test-signing-secret", "user-service", 15*time.Minute, 24*time.Hour)

	for _, email := range []string{"a@a.com", "user@example.com", "weird+tag@sub.domain.io"} {
		token, _, err := ts.GenerateAccessToken(email)
		require.NoError(t, err)

		subject, err := ts.ExtractSubject(token)
		require.NoError(t, err)
		assert.Equal(t, email, subject)
	}
}

func TestTokenService_ExtractSubject_Expired(t *testing.T) {
	// Negative expiry mints a token that is already past its exp claim.
	ts := NewTokenService("test-signing-secret", "user-service", -1*time.Minute, 24*time.Hour)

	token, _, err := ts.GenerateAccessToken("u@example.com")
	require.NoError(t, err)

	_, err = ts.ExtractSubject(token)
	assert.ErrorIs(t, err, autherror.ErrExpiredCredential)
}

func TestTokenService_ExtractSubject_WrongKey(t *testing.T) {
	signer := NewTokenService("signer-secret", "user-service", 15*time.Minute, 24*time.Hour)
	verifier := NewTokenService("other-secret", "user-service", 15*time.Minute, 24*time.Hour)

	token, _, err := signer.GenerateAccessToken("u@example.com")
	require.NoError(t, err)

	_, err = verifier.ExtractSubject(token)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredential)
}

func TestTokenService_ExtractSubject_Malformed(t *testing.T) {
	ts := NewTokenService("test-signing-secret", "user-service", 15*time.Minute, 24*time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := ts.ExtractSubject(token)
		assert.ErrorIs(t, err, autherror.ErrInvalidCredential)
	}
}

func TestTokenService_ExtractSubject_RejectsUnsignedAlg(t *testing.T) {
	ts := NewTokenService("test-signing-secret", "user-service", 15*time.Minute, 24*time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "u@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.ExtractSubject(unsigned)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredential)
}

func TestTokenService_IsValid(t *testing.T) {
	ts := NewTokenService("test-signing-secret", "user-service", 15*time.Minute, 24*time.Hour)

	token, _, err := ts.GenerateAccessToken("u@example.com")
	require.NoError(t, err)

	assert.True(t, ts.IsValid(token, "u@example.com"))
	assert.False(t, ts.IsValid(token, "someone-else@example.com"))
	assert.False(t, ts.IsValid("garbage", "u@example.com"))

	expired := NewTokenService("test-signing-secret", "user-service", -time.Minute, 24*time.Hour)
	expiredToken, _, err := expired.GenerateAccessToken("u@example.com")
	require.NoError(t, err)
	assert.False(t, ts.IsValid(expiredToken, "u@example.com"))
}
