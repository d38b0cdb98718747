package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or claims validation
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents the JWT claims carried by an issued token
type Claims struct {
	Subject string `json:"subject"`
	jwt.RegisteredClaims
}

// Token contains an issued access token
type Token struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"` // seconds
}

// AuthService handles token issuance and validation. No invoice route
// requires a token; the service exists so callers that want one can obtain
// and present it.
type AuthService interface {
	GenerateToken(subject string) (*Token, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// authService implements AuthService
type authService struct {
	jwtSecret     []byte
	jwtExpiration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string, jwtExpiration time.Duration) AuthService {
	return &authService{
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: jwtExpiration,
	}
}

// GenerateToken issues a signed JWT for the given subject
func (s *authService) GenerateToken(subject string) (*Token, error) {
	now := time.Now()
	claims := &Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{
		AccessToken: signed,
		ExpiresIn:   int64(s.jwtExpiration.Seconds()),
	}, nil
}

// ValidateToken parses and validates a token string
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
