// In file: internal/auth/issuer.go

// Package auth mints and verifies the short-lived credentials that authorize
// one orchestration session's call to the tool-execution service.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// credentialTTL is the validity window of an issued credential. The
// tool-execution service verifies the same window, so this is a
// compatibility contract, not a tuning knob.
const credentialTTL = 60 * time.Second

// ErrSecretUnset is returned when credential issuance is attempted without a
// configured signing secret.
var ErrSecretUnset = errors.New("JWT_SECRET is not configured")

// CredentialClaims are the claims carried by an issued credential. The
// session ID scopes the credential to exactly one orchestration request.
type CredentialClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Issuer signs session-scoped credentials with a process-wide secret.
// Signing is CPU-bound; the issuer never contacts an external system.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue mints an HMAC-SHA256 signed token for the given session, valid from
// now until now+60s. The secret is checked here rather than at construction
// so a missing secret surfaces as a per-request configuration error.
func (i *Issuer) Issue(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session ID cannot be empty")
	}
	if len(i.secret) == 0 {
		return "", ErrSecretUnset
	}

	now := i.now()
	claims := CredentialClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(credentialTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign credential: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a credential, returning its claims. The
// tool-execution service performs the equivalent check on its side; Verify
// pins down the algorithm and expiry semantics both parties agree on
// (HS256 only, expiry exclusive: a token is rejected from its exp instant).
func (i *Issuer) Verify(token string) (*CredentialClaims, error) {
	if len(i.secret) == 0 {
		return nil, ErrSecretUnset
	}

	claims := &CredentialClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid credential: %w", err)
	}
	return claims, nil
}
