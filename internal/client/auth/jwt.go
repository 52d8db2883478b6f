// Package auth issues and reads the demo session token attached to a logged-in
// user. The token is not a credential check: it only records who logged in,
// with which role, and until when the session is considered live.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/loandesk/internal/client/models"
	"github.com/dmitrijs2005/loandesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session principal next to the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"uid"`
	Name   string      `json:"name"`
	Role   models.Role `json:"role"`
}

// Tokener signs and verifies session tokens with an HS256 key.
type Tokener struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewTokener(secretKey []byte, ttl time.Duration) *Tokener {
	return &Tokener{secretKey: secretKey, ttl: ttl, now: time.Now}
}

// GenerateToken signs a token for u that expires after the configured TTL.
func (t *Tokener) GenerateToken(u models.User) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
	})

	return token.SignedString(t.secretKey)
}

// ParseToken verifies tokenString and returns its claims. Expired tokens
// yield common.ErrTokenExpired, anything else unreadable common.ErrInvalidToken.
func (t *Tokener) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (interface{}, error) {
		return t.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// Verify implements the session store's expiry check.
func (t *Tokener) Verify(tokenString string) error {
	_, err := t.ParseToken(tokenString)
	return err
}
