package sss

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// RandSource produces a uniform integer in [0, m). The core never reads a
// process-wide RNG directly (spec.md §5): callers inject a source, which
// is what makes deterministic tests possible via a seeded implementation.
// Grounded in other_examples/0f3efae5_TNO-MPC-shamir__secretsharing.go.go's
// rand.Int(rand.Reader, fieldSize) call, lifted behind an interface.
type RandSource interface {
	// Intn returns a uniform value in [0, m). m must be positive.
	Intn(m *big.Int) (*big.Int, error)
}

// CryptoRandSource is the default RandSource, backed by crypto/rand.
type CryptoRandSource struct{}

// Intn returns a cryptographically uniform value in [0, m).
func (CryptoRandSource) Intn(m *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, m)
}

// DeterministicRandSource is a seeded, non-cryptographic RandSource for
// reproducible tests -- it is never the default and must be constructed
// explicitly by the caller.
type DeterministicRandSource struct {
	r *mrand.Rand
}

// NewDeterministicRandSource seeds a deterministic source from two uint64
// seed halves, the seed shape of math/rand/v2's PCG source.
func NewDeterministicRandSource(seed1, seed2 uint64) *DeterministicRandSource {
	return &DeterministicRandSource{r: mrand.New(mrand.NewPCG(seed1, seed2))}
}

// Intn returns a deterministic value in [0, m) given the seeded stream.
func (d *DeterministicRandSource) Intn(m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, errNonPositiveModulus
	}

	// big.Int doesn't have a generic bounded-random-from-Rand helper in
	// math/rand/v2, so sample byte-by-byte and reject candidates >= m -- adequate for test
	// determinism, not for cryptographic use (see CryptoRandSource).
	bitLen := m.BitLen()
	byteLen := (bitLen + 7) / 8
	if byteLen == 0 {
		byteLen = 1
	}

	buf := make([]byte, byteLen)
	for {
		for i := range buf {
			buf[i] = byte(d.r.IntN(256))
		}

		candidate := new(big.Int).SetBytes(buf)
		if candidate.Cmp(m) < 0 {
			return candidate, nil
		}
	}
}
