// Package models holds the persistent data types of the engine.
package models

import "time"

// User is a registered account. Name, Salt, and Hash are set once at
// creation. LockUntil is a unix timestamp (seconds) before which sign-in
// attempts are rejected; 0 means unlocked.
type User struct {
	ID        string
	Name      string
	Salt      string
	Hash      string
	LockUntil int64
	CreatedAt time.Time
}
