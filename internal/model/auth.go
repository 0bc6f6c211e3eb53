package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the admin login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued admin token.
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// AdminClaims are the JWT claims for admin (quality dashboard) access.
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}
