package service

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"travel-cms/model"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService("admin", string(hash), "sign-key")

	signed, err := svc.Login("admin", "secret")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) { return []byte("sign-key"), nil })
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, AdminRole, claims["role"])
	assert.Equal(t, "admin", claims["username"])

	_, err = svc.Login("admin", "wrong")
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials))

	_, err = svc.Login("root", "secret")
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
}

func TestAuthService_LoginUnconfigured(t *testing.T) {
	svc := NewAuthService("admin", "", "")

	_, err := svc.Login("admin", "")
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
}
