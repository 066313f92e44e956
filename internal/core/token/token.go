// Package token issues and verifies the bearer tokens returned by login.
//
// Tokens are symmetric (HS256) JWTs: the issuer and the verifier are the
// same process, so nothing outside it ever needs to check a signature.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed encoding,
// signature mismatch, missing or elapsed expiry. Callers get one generic
// rejection; the wrapped cause is only for server-side logs.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = time.Hour

// Manager signs and verifies tokens with a secret fixed at construction.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager. A non-positive ttl falls back to one hour.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the given user id. The expiry is
// fixed at issuance to now+ttl and is not renewable; once it elapses the
// client must log in again.
func (m *Manager) Issue(subjectID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry and returns the subject user id.
// A token without an expiry claim is rejected outright.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
