package token

import (
	"strings"

	"pokerpot-server/internal/rng"
)

// Alphabet is the set of characters a room code is made of
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a random string of length n drawn from Alphabet
func Generate(g rng.Generator, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(Alphabet[g.Intn(len(Alphabet))])
	}

	return sb.String()
}

// IsValid returns true if code could have been produced by Generate for length n
func IsValid(code string, n int) bool {
	if len(code) != n {
		return false
	}

	for _, r := range code {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}

	return true
}
