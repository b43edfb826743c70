// Package lockout implements the per-user cooldown state machine triggered
// by failed password verification.
package lockout

import "time"

// Policy decides whether a user is locked and computes the next lock
// deadline. A user is locked while its lock timestamp lies in the future;
// unlocking happens by the clock alone, there is no explicit unlock.
//
// Now is injectable so tests can simulate the passage of time. A nil Now
// falls back to time.Now.
type Policy struct {
	Cooldown time.Duration
	Now      func() time.Time
}

func (p *Policy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Locked reports whether the given lock timestamp (unix seconds, 0 meaning
// unlocked) is still in effect.
func (p *Policy) Locked(lockUntil int64) bool {
	return lockUntil > p.now().Unix()
}

// Next returns the lock timestamp for a failed attempt happening now.
// Each failure restarts the full cooldown window, so consecutive failures
// only ever push the deadline forward.
func (p *Policy) Next() int64 {
	return p.now().Add(p.Cooldown).Unix()
}
