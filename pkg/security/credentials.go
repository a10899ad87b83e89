package security

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Credentials verifies the fixed admin credential pair. The password side is
// either a bcrypt hash (preferred) or a plaintext value compared in constant
// time. Matching is exact and case-sensitive.
type Credentials struct {
	username     string
	passwordHash string
	password     string
}

// NewCredentials builds a verifier from a plaintext password.
func NewCredentials(username, password string) (*Credentials, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password must be set")
	}
	return &Credentials{username: username, password: password}, nil
}

// NewCredentialsFromHash builds a verifier from a bcrypt password hash.
func NewCredentialsFromHash(username, passwordHash string) (*Credentials, error) {
	if username == "" || passwordHash == "" {
		return nil, errors.New("username and password hash must be set")
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, errors.New("password hash is not a valid bcrypt hash")
	}
	return &Credentials{username: username, passwordHash: passwordHash}, nil
}

// Verify reports whether the supplied pair matches the configured pair.
func (c *Credentials) Verify(username, password string) bool {
	// Compare both fields unconditionally to keep timing uniform
	userMatch := subtle.ConstantTimeCompare([]byte(c.username), []byte(username)) == 1

	var passMatch bool
	if c.passwordHash != "" {
		passMatch = bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(password)) == nil
	} else {
		passMatch = subtle.ConstantTimeCompare([]byte(c.password), []byte(password)) == 1
	}

	return userMatch && passMatch
}
