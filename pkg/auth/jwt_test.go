package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret")
	identity := Identity{UserID: "user-1", Name: "Asha Rao", Phone: "+919876543210"}

	token, err := svc.GenerateJWT(identity, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, identity, claims.Identity)
}

func TestValidateToken_Invalid(t *testing.T) {
	svc := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateJWT(Identity{UserID: "user-1"}, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret")
	token, err := svc.GenerateJWT(Identity{UserID: "user-1"}, time.Now().Add(-time.Minute))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
