// In file: internal/auth/session.go
package auth

import "github.com/google/uuid"

// NewSessionID returns the identity of one orchestration request. Random
// rather than timestamp-derived: concurrent requests must never share a
// session, and a credential is scoped to exactly one.
func NewSessionID() string {
	return "session-" + uuid.NewString()
}
