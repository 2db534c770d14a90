package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims is the JWT payload for an authenticated admin session.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the admin login payload. A single shared password is the
// whole credential set.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token for subsequent admin requests.
type LoginResponse struct {
	Token string `json:"token"`
}
