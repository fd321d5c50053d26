package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim value that grants admin access
const RoleAdmin = "admin"

// Identity is the authenticated caller as asserted by the identity provider
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}

// identityClaims is the access token payload
type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// TokenGenerator handles identity token generation and validation
type TokenGenerator struct {
	secret            string
	accessTokenExpiry time.Duration
	now               func() time.Time
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, accessExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:            secret,
		accessTokenExpiry: accessExpiry,
		now:               time.Now,
	}
}

// GenerateAccessToken signs an access token for the identity
func (tg *TokenGenerator) GenerateAccessToken(identity Identity) (string, error) {
	email := strings.TrimSpace(identity.Email)
	if email == "" {
		return "", fmt.Errorf("email is required")
	}

	now := tg.now()
	claims := identityClaims{
		Email: email,
		Name:  identity.Name,
		Role:  identity.Role,
		Type:  "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tg.accessTokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken validates an access token and returns the identity it carries
func (tg *TokenGenerator) ValidateAccessToken(tokenString string) (*Identity, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	}, jwt.WithTimeFunc(tg.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	if claims.Type != "access" {
		return nil, fmt.Errorf("token is not an access token")
	}

	if strings.TrimSpace(claims.Email) == "" {
		return nil, fmt.Errorf("email not found in token")
	}

	return &Identity{
		Email: strings.TrimSpace(claims.Email),
		Name:  claims.Name,
		Role:  claims.Role,
	}, nil
}
