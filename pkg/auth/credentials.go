package auth

import (
	"fmt"
	"os"
)

// Environment variables for the optional plaintext gate on the publish
// channel. Credentials are deliberately env-only: they must never appear in
// CLI flags or process listings.
const (
	EnvUsername = "PUB_USERNAME"
	EnvPassword = "PUB_PASSWORD"
)

// Credentials holds the plaintext username/password pair for the publish
// channel. A zero value means an open (unauthenticated) channel.
type Credentials struct {
	Username string
	Password string
}

// FromEnv loads credentials from the environment. Both variables must be set
// together; a half-configured pair is a configuration error rather than a
// silently open channel.
func FromEnv() (Credentials, error) {
	user := os.Getenv(EnvUsername)
	pass := os.Getenv(EnvPassword)

	if (user == "") != (pass == "") {
		return Credentials{}, fmt.Errorf("%s and %s must be set together", EnvUsername, EnvPassword)
	}
	return Credentials{Username: user, Password: pass}, nil
}

// IsZero reports whether no credentials are configured.
func (c Credentials) IsZero() bool {
	return c.Username == "" && c.Password == ""
}
