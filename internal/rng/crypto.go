package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand
type Crypto struct{}

// Intn returns a number in [0, n)
func (Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
