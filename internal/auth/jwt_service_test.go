package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newTestJWTService(t *testing.T, secret, algorithm string) *JWTService {
	t.Helper()
	service, err := NewJWTService(secret, algorithm)
	assert.NoError(t, err)
	return service
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := newTestJWTService(t, "test-secret", "HS256")

	token, err := service.GenerateToken("64f1c0ffee0000000000abcd")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", claims.UserID)
	assert.Equal(t, "64f1c0ffee0000000000abcd", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := newTestJWTService(t, "test-secret", "HS256")

	expired := func() string {
		claims := &Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)
		return token
	}()

	otherSecret, err := newTestJWTService(t, "other-secret", "HS256").GenerateToken("user-1")
	assert.NoError(t, err)

	otherAlg, err := newTestJWTService(t, "test-secret", "HS512").GenerateToken("user-1")
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired token", token: expired},
		{name: "wrong secret", token: otherSecret},
		{name: "wrong algorithm", token: otherAlg},
		{name: "malformed token", token: "not-a-jwt"},
		{name: "empty token", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RejectsUnsupportedAlgorithm(t *testing.T) {
	tests := []string{"RS256", "ES256", "none", "hs256", ""}

	for _, algorithm := range tests {
		t.Run(algorithm, func(t *testing.T) {
			service, err := NewJWTService("test-secret", algorithm)
			assert.Error(t, err)
			assert.Nil(t, service)
		})
	}
}
