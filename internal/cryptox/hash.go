// Package cryptox implements the layered SHA-256 construction used for
// password and session hashing.
//
// Both functions apply the digest rounds+1 times: round 0 digests the input
// itself, every later round digests the previous round's hex output. The
// salted variant mixes the salt into every round, alternating the
// concatenation order by round parity. Stored hashes depend on this exact
// layering, so it must not change.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// DefaultRounds is the number of extra digest layers applied on top of
// the round-0 digest.
const DefaultRounds = 1024

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Hash produces the nested hex SHA-256 digest of message. Any message is a
// valid input, including the empty string.
func Hash(message string, rounds int) string {
	out := digest(message)
	for r := 1; r <= rounds; r++ {
		out = digest(out)
	}
	return out
}

// HashSalted produces the nested hex SHA-256 digest of secret mixed with
// salt. Round 0 digests secret+salt; round r digests layer+salt when r is
// even and salt+layer when r is odd.
func HashSalted(secret, salt string, rounds int) string {
	out := digest(secret + salt)
	for r := 1; r <= rounds; r++ {
		if r%2 == 0 {
			out = digest(out + salt)
		} else {
			out = digest(salt + out)
		}
	}
	return out
}
