package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"travel-cms/model"
)

const (
	AdminRole = "admin"
	tokenTTL  = 8 * time.Hour
)

type AuthService struct {
	username     string
	passwordHash []byte
	signingKey   []byte
	now          func() time.Time
}

func NewAuthService(username, passwordHash, signingKey string) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: []byte(passwordHash),
		signingKey:   []byte(signingKey),
		now:          time.Now,
	}
}

func isPasswordHashCorrect(hash []byte, pass string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(pass)) == nil
}

// Login checks the admin credentials and issues a signed HS256 token.
func (s *AuthService) Login(username, password string) (string, error) {
	if len(s.passwordHash) == 0 || len(s.signingKey) == 0 {
		return "", model.ErrInvalidCredentials
	}
	if username != s.username || !isPasswordHashCorrect(s.passwordHash, password) {
		return "", model.ErrInvalidCredentials
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = username
	claims["exp"] = s.now().Add(tokenTTL).Unix()
	claims["role"] = AdminRole

	return token.SignedString(s.signingKey)
}
