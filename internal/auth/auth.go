// Package auth guards the metrics listener and throttles API clients.
package auth

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// BasicAuth checks HTTP basic credentials against a bcrypt hash.
type BasicAuth struct {
	Realm        string
	Username     string
	PasswordHash string
}

// NewBasicAuth returns a guard for username/passwordHash.
func NewBasicAuth(realm, username, passwordHash string) *BasicAuth {
	return &BasicAuth{Realm: realm, Username: username, PasswordHash: passwordHash}
}

// ValidateCredentials checks if username and password are valid
func (a *BasicAuth) ValidateCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	// always run bcrypt so a wrong username costs the same as a wrong password
	passErr := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return userOK && passErr == nil
}

// Wrap rejects requests without valid credentials with 401.
func (a *BasicAuth) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !a.ValidateCredentials(user, pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+a.Realm+`", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HashPassword generates a bcrypt hash for a password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
