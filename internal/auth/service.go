package auth

import (
	"errors"
	"time"

	"storefront/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidCredentials is returned on a wrong admin password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for a missing, malformed or expired token.
	ErrInvalidToken = errors.New("invalid token")
)

// Service gates the admin panel behind one shared password and mints bearer
// tokens for authenticated sessions. A single static password is the whole
// credential set; this is a convenience gate, not a hardened boundary.
type Service struct {
	password string
	secret   []byte
}

// NewService creates an auth service with the given admin password and JWT
// signing secret.
func NewService(password string, secret []byte) *Service {
	return &Service{password: password, secret: secret}
}

// Login checks the password and returns a signed session token.
func (s *Service) Login(password string) (*model.LoginResponse, error) {
	if password != s.password {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT()
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token}, nil
}

// ValidateToken verifies a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) generateJWT() (string, error) {
	claims := &model.AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
