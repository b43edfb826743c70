package models

import "time"

// Session is a one-way link from the hash of a session secret to the owning
// user. The raw secret is never persisted. Links are append-only; there is
// no expiry.
type Session struct {
	ID         string
	UserID     string
	SecretHash string
	CreatedAt  time.Time
}
