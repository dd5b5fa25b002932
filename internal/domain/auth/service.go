package auth

import (
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"profitline/internal/core/apperror"
)

// Service authenticates reporting API callers against a single configured
// credential and issues access tokens. User management is out of scope for
// a read-only reporting service.
type Service struct {
	jwt          *JWTService
	username     string
	passwordHash []byte
}

// NewService creates an auth service. passwordHash is a bcrypt hash of the
// reporting credential.
func NewService(jwt *JWTService, username, passwordHash string) *Service {
	return &Service{
		jwt:          jwt,
		username:     username,
		passwordHash: []byte(passwordHash),
	}
}

// Login verifies the credential and returns an access token.
func (s *Service) Login(username, password string) (string, time.Time, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !usernameOK || passwordErr != nil {
		return "", time.Time{}, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(username, "reporting")
	if err != nil {
		return "", time.Time{}, apperror.NewInternal(err)
	}
	return token, expiresAt, nil
}
