// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// SessionContext is the authenticated identity used for every remote call.
// It never carries the account password.
type SessionContext struct {
	Email       string            `json:"email"`        // Account email, the stable key of the account.
	BaseURL     string            `json:"base"`         // Scheme and host of the remote service.
	CSRFToken   string            `json:"-"`            // Anti-forgery token captured during login, empty outside login.
	Cookies     map[string]string `json:"cookies"`      // Allow-listed cookies that make up the session.
	TokenExpiry *time.Time        `json:"remember_exp"` // Best-effort expiry decoded from the remember cookie.
}

// SessionStatus is the externally visible state of an account session.
type SessionStatus struct {
	Email       string     `json:"email"`
	BaseURL     string     `json:"base"`
	TokenExpiry *time.Time `json:"remember_exp,omitempty"`
	Expired     bool       `json:"expired"`
	NeedsReauth bool       `json:"needs_reauth"`
}

// AccountKey normalizes an email into the registry and storage key.
func AccountKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
