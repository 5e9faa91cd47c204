package domain

import "time"

// SessionRecord is the server side state behind a session cookie.
type SessionRecord struct {
	ID        string
	UserID    string // empty while anonymous
	Data      map[string]string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthEmail is the single verification slot for an email address. Only the
// fingerprint of the latest key is kept.
type AuthEmail struct {
	Email    string
	KeyHash  string
	IssuedAt time.Time
}
