// Package jwtx signs and verifies portal session tokens using an Ed25519
// keypair generated at startup. Keys are ephemeral: restarting the process
// invalidates outstanding sessions, which is acceptable for a portal with a
// handful of human operators.
package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrIssuer       = errors.New("jwtx: unexpected issuer")
)

// Verifier validates a raw token string and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// Signer mints and verifies EdDSA-signed session tokens.
type Signer struct {
	key    ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
	ttl    time.Duration
}

// NewSigner generates a fresh Ed25519 keypair for the given issuer.
func NewSigner(issuer string, ttl time.Duration) (*Signer, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate keypair: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &Signer{key: key, pub: pub, issuer: issuer, ttl: ttl}, nil
}

// Sign mints a session token for the given account identity.
func (s *Signer) Sign(username, role, name string) (string, error) {
	claims := NewSessionClaims(username, role, name, s.issuer, s.ttl, time.Now().UTC())
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return t.SignedString(s.key)
}

// Verify parses the raw token, checks the signature, issuer and validity
// window, and returns the claims.
func (s *Signer) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		return s.pub, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if err := claims.ValidateIssuer(s.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
