// Package user resolves who is running campfire
package user

import (
	"os"
	"os/user"
	"strings"
)

// CurrentName returns the login name of the current user
// It tries the OS account, then $USER, then fallback.
func CurrentName(fallback string) string {
	if u, err := user.Current(); err == nil && strings.TrimSpace(u.Username) != "" {
		return u.Username
	}
	if name := strings.TrimSpace(os.Getenv("USER")); name != "" {
		return name
	}
	return fallback
}
