// Package session answers whether the current user is signed in.
package session

import (
	"os"
	"strings"
)

// EnvToken overrides the token file when set.
const EnvToken = "STOREFRONT_AUTH_TOKEN"

// Checker reports whether a user session is present.
type Checker interface {
	Authenticated() bool
}

// TokenFile treats a non-empty auth token as a signed-in session. The token is
// read from the environment first, then from Path.
type TokenFile struct {
	Path string
}

// Authenticated implements Checker.
func (t TokenFile) Authenticated() bool {
	return t.Token() != ""
}

// Token returns the current auth token, or "" when signed out.
func (t TokenFile) Token() string {
	if tok := strings.TrimSpace(os.Getenv(EnvToken)); tok != "" {
		return tok
	}
	if t.Path == "" {
		return ""
	}
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Static is a fixed answer, useful for tests and previews.
type Static bool

// Authenticated implements Checker.
func (s Static) Authenticated() bool { return bool(s) }
