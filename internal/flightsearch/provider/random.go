package provider

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Stream yields values in [0, 1).
type Stream interface {
	Float64() float64
}

// LCG is a 32-bit linear congruential stream. The same seed always yields the
// same sequence.
type LCG struct {
	state uint32
}

func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

func (l *LCG) Float64() float64 {
	l.state = l.state*1664525 + 1013904223
	return float64(l.state) / (1 << 32)
}

func (l *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(l.Float64() * float64(n))
}

// SafeRand draws from crypto/rand. It backs the cosmetic jitter of the price
// series and is never used for offer fields.
type SafeRand struct{}

func NewSafeRand() *SafeRand {
	return &SafeRand{}
}

func (s *SafeRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	value, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return int(value.Int64())
}

func (s *SafeRand) Float64() float64 {
	max := new(big.Int).Lsh(big.NewInt(1), 53)
	value, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return float64(value.Int64()) / math.Pow(2, 53)
}
