package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Source yields uniformly distributed floats in [0, 1).
type Source interface {
	Float64() float64
}

// MathSource draws from the math/rand/v2 global generator.
type MathSource struct{}

// Float64 returns a pseudo-random float in [0, 1).
func (MathSource) Float64() float64 {
	return rand.Float64()
}

// CryptoSource draws from crypto/rand. It panics only if the system
// random reader fails, which crypto/rand treats as fatal.
type CryptoSource struct{}

// Float64 returns a float in [0, 1) built from 53 crypto/rand bits.
func (CryptoSource) Float64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("generator: reading crypto/rand: %v", err))
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// SourceByName resolves the RANDOM_SOURCE setting.
func SourceByName(name string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "math":
		return MathSource{}, nil
	case "crypto":
		return CryptoSource{}, nil
	default:
		return nil, fmt.Errorf("unknown random source %q", name)
	}
}
