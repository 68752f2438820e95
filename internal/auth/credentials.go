// Package auth checks login credentials against the configured table.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Table maps usernames to bcrypt password hashes.
type Table map[string][]byte

// NewTable hashes every configured password. Values that already are bcrypt
// hashes are stored unchanged.
func NewTable(passwords map[string]string) (Table, error) {
	return newTable(passwords, bcrypt.DefaultCost)
}

func newTable(passwords map[string]string, cost int) (Table, error) {
	t := make(Table, len(passwords))
	for user, pass := range passwords {
		if _, err := bcrypt.Cost([]byte(pass)); err == nil {
			t[user] = []byte(pass)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), cost)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %q: %w", user, err)
		}
		t[user] = hash
	}
	return t, nil
}

// Authenticate reports whether username exists and password matches it.
func (t Table) Authenticate(username, password string) bool {
	hash, ok := t[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// HashPassword returns the bcrypt form of password for use in a secrets file.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
