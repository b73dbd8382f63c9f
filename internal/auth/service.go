package auth

import (
	"fmt"
	"time"

	"sales-portal-backend/internal/config"
	apperrors "sales-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims carried by a session token
type Claims struct {
	Email                string `json:"email"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest is the credential pair submitted by the login form. The rules
// mirror the form's own checks: a well-formed email and at least six
// characters of password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthService issues and validates session tokens. Authentication is bounded
// to success/failure on the credential shape; there is no user directory
// behind it.
type AuthService struct {
	cfg       *config.Config
	validator *validator.Validate
}

// NewAuthService creates a new AuthService
func NewAuthService(cfg *config.Config, validator *validator.Validate) *AuthService {
	return &AuthService{
		cfg:       cfg,
		validator: validator,
	}
}

// Login checks the credential pair and returns a signed session token on
// success
func (s *AuthService) Login(req *LoginRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	return s.issueJWT(req.Email)
}

// issueJWT signs a one-hour HS256 session token for the email
func (s *AuthService) issueJWT(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and verifies a session token
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
