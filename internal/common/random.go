package common

import (
	"crypto/rand"
	"math/big"
)

// Alphabet is the character set used for salts and session secrets:
// lowercase latin letters plus digits.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomString generates a string of the given length with characters drawn
// uniformly from Alphabet, using a cryptographically secure source.
//
// It returns an error only if the system random source fails.
func RandomString(length int) (string, error) {
	max := big.NewInt(int64(len(Alphabet)))

	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = Alphabet[n.Int64()]
	}

	return string(b), nil
}
