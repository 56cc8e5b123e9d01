package service

import (
	"errors"
	"strings"

	"github.com/arstudios/intake-api/internal/auth"
)

// ErrInvalidCredentials covers every login failure; callers never learn
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies the single configured admin and issues access tokens.
// The identity is fixed for the process lifetime; there is no user table.
type AuthService struct {
	adminEmail string
	adminHash  string
	jwtSecret  string
}

// NewAuthService hashes the admin password once at startup.
func NewAuthService(adminEmail, adminPassword, jwtSecret string) (*AuthService, error) {
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	return &AuthService{adminEmail: adminEmail, adminHash: hash, jwtSecret: jwtSecret}, nil
}

type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *AuthService) authenticate(email, password string) bool {
	return strings.EqualFold(email, s.adminEmail) && auth.CheckPassword(password, s.adminHash)
}

// Login returns a bearer token for valid admin credentials.
func (s *AuthService) Login(email, password string) (*TokenResult, error) {
	if !s.authenticate(email, password) {
		return nil, ErrInvalidCredentials
	}
	token, err := auth.GenerateToken(s.jwtSecret, s.adminEmail)
	if err != nil {
		return nil, err
	}
	return &TokenResult{AccessToken: token, TokenType: "bearer"}, nil
}

// AdminEmail exposes the configured admin address for the route guard.
func (s *AuthService) AdminEmail() string {
	return s.adminEmail
}
