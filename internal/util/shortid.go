package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateUniqueDigits allocates an n-digit numeric token (no leading zero):
// generate a candidate, ask taken whether it collides, retry on collision.
// Collisions are retried indefinitely because the token space makes repeated
// collisions vanishingly rare. A store error from taken aborts immediately.
func GenerateUniqueDigits(n int, taken func(string) (bool, error)) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("length must be positive")
	}

	// candidates live in [10^(n-1), 10^n)
	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n-1)), nil)
	span := new(big.Int).Mul(low, big.NewInt(9))

	for {
		r, err := rand.Int(rand.Reader, span)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		candidate := new(big.Int).Add(low, r).String()

		exists, err := taken(candidate)
		if err != nil {
			return "", fmt.Errorf("check token: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}
