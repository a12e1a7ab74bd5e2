package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the claims in a session token
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager handles session token generation and validation.
// Tokens are short lived and re-issued on every authenticated request.
type JWTManager struct {
	secretKey      []byte
	sessionTimeout time.Duration
	now            func() time.Time
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, sessionTimeout time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:      []byte(secret),
		sessionTimeout: sessionTimeout,
		now:            time.Now,
	}
}

// SessionTimeout returns the inactivity window of a token
func (m *JWTManager) SessionTimeout() time.Duration {
	return m.sessionTimeout
}

// GenerateToken generates a new session token
func (m *JWTManager) GenerateToken(userID uint, username, role string) (string, error) {
	now := m.now()
	claims := &JWTClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTimeout)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "temple-billing",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Refresh issues a fresh token for the same identity
func (m *JWTManager) Refresh(claims *JWTClaims) (string, error) {
	return m.GenerateToken(claims.UserID, claims.Username, claims.Role)
}

// ValidateToken validates a session token and returns the claims
func (m *JWTManager) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
