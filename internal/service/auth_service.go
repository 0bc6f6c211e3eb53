package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"btyesteem/internal/config"
	"btyesteem/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues and validates admin tokens for the quality and
// schedule endpoints. Assessment submission itself is public.
type AuthService struct {
	adminUsername string
	adminPassword string
	jwtSecret     []byte
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
		jwtSecret:     []byte(cfg.JWTSecret),
	}
}

// Login validates credentials and returns a signed admin token.
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.adminUsername || password != s.adminPassword {
		return nil, ErrInvalidCredentials
	}

	adminID := "admin_" + uuid.New().String()[:8]

	claims := &model.AdminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		AdminID: adminID,
	}, nil
}

// ValidateAdminToken validates an admin JWT and returns its claims.
func (s *AuthService) ValidateAdminToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
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
