package vos

import (
	"crypto/subtle"
	"strings"

	"github.com/josephlewis42/jartos/core/config"
	"golang.org/x/crypto/bcrypt"
)

// PasswordSource looks up the accepted passwords for a user.
type PasswordSource interface {
	GetPasswords(username string) []string
}

var _ PasswordSource = (*config.Configuration)(nil)

// StaticAuthenticator accepts the username/password pairs from a fixed list.
// Stored passwords may be plain text or bcrypt hashes.
type StaticAuthenticator struct {
	passwords PasswordSource
}

var _ Authenticator = (*StaticAuthenticator)(nil)

// NewStaticAuthenticator creates an authenticator over the given password source.
func NewStaticAuthenticator(passwords PasswordSource) *StaticAuthenticator {
	return &StaticAuthenticator{passwords: passwords}
}

// CheckCredentials implements Authenticator.
func (a *StaticAuthenticator) CheckCredentials(username, password string) bool {
	// Every candidate is checked, even after a match.
	matched := false
	for _, stored := range a.passwords.GetPasswords(username) {
		if passwordMatches(stored, password) {
			matched = true
		}
	}
	return matched
}

func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcryptHash(stored string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}

// UserList is a PasswordSource over an in-memory list of users.
type UserList []config.User

var _ PasswordSource = (UserList)(nil)

// GetPasswords implements PasswordSource.
func (ul UserList) GetPasswords(username string) []string {
	for _, u := range ul {
		if u.Username == username {
			return u.Passwords
		}
	}
	return nil
}
