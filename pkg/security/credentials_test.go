package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPlainPassword(t *testing.T) {
	creds, err := NewCredentials("admin", "s3cret")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		expected bool
	}{
		{name: "exact match", username: "admin", password: "s3cret", expected: true},
		{name: "wrong password", username: "admin", password: "nope", expected: false},
		{name: "wrong username", username: "root", password: "s3cret", expected: false},
		{name: "username case-sensitive", username: "Admin", password: "s3cret", expected: false},
		{name: "password case-sensitive", username: "admin", password: "S3cret", expected: false},
		{name: "both empty", username: "", password: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, creds.Verify(tt.username, tt.password))
		})
	}
}

func TestVerifyHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	creds, err := NewCredentialsFromHash("admin", string(hash))
	assert.NoError(t, err)

	assert.True(t, creds.Verify("admin", "s3cret"))
	assert.False(t, creds.Verify("admin", "nope"))
	assert.False(t, creds.Verify("root", "s3cret"))
}

func TestNewCredentialsRejectsEmpty(t *testing.T) {
	_, err := NewCredentials("", "s3cret")
	assert.Error(t, err)

	_, err = NewCredentials("admin", "")
	assert.Error(t, err)
}

func TestNewCredentialsFromHashRejectsInvalidHash(t *testing.T) {
	_, err := NewCredentialsFromHash("admin", "not-a-bcrypt-hash")
	assert.Error(t, err)
}
