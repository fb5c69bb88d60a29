// Package sss implements the dealer and combiner of Shamir Secret Sharing
// over a Galois ring: the dealer samples the sharing polynomial and
// evaluates it at exceptional-set points, the combiner reconstructs the
// secret via Lagrange interpolation at zero. These are the sole public
// entry points into the core; everything below them (modint, poly,
// galoisring) is an internal collaborator.
package sss

import (
	"errors"
	"math/big"

	"github.com/nrkumar/galoisshare/galoisring"
)

var (
	errNonPositiveModulus = errors.New("sss: modulus must be positive")

	// ErrThresholdOutOfRange is returned when t < 1 or t > n.
	ErrThresholdOutOfRange = errors.New("sss: threshold t must satisfy 1 <= t <= n")

	// ErrDuplicateEvaluationPoint is returned by Reconstruct when two
	// shares carry the same x-coordinate.
	ErrDuplicateEvaluationPoint = errors.New("sss: duplicate evaluation point among shares")

	// ErrInsufficientShares is returned by Reconstruct when fewer than t
	// shares are supplied and the caller asked for the check (a positive
	// minShares passed to NewCombiner); reconstructing with too few shares otherwise
	// silently returns an incorrect result, as spec.md §7 allows.
	ErrInsufficientShares = errors.New("sss: fewer shares supplied than the configured threshold")

	// ErrReconstructionDenominatorNotInvertible indicates misuse: some
	// (xi - xj) fell outside the exceptional set and is not a unit in R.
	ErrReconstructionDenominatorNotInvertible = errors.New("sss: reconstruction denominator is not invertible in the ring")
)

// Share is a pair (xi, yi): an evaluation point drawn from the ring's
// exceptional set, and the sharing polynomial's value there. Shares are
// produced by a Dealer and consumed by a Combiner; neither mutates one.
type Share struct {
	X galoisring.Element
	Y galoisring.Element
}

// Dealer samples a sharing polynomial for a fixed ring, prime
// characteristic, threshold, and party count, and evaluates it.
type Dealer struct {
	ring      *galoisring.Ring
	prime     *big.Int
	n         int
	threshold int
}

// NewDealer constructs a Dealer. Precondition (spec.md §4.5):
// 1 <= t <= n <= p^d - 1. The bounds on t are checked here; n <= p^d - 1
// is checked on every Share call, against the exceptional set built from
// the injected characteristic p.
func NewDealer(ring *galoisring.Ring, prime *big.Int, n, t int) (*Dealer, error) {
	if t < 1 || t > n {
		return nil, ErrThresholdOutOfRange
	}

	return &Dealer{ring: ring, prime: prime, n: n, threshold: t}, nil
}

// Share samples the sharing polynomial P = [secret, a1, ..., a_{t-1}],
// with each ai drawn uniformly from R via rng, and evaluates P at the
// first n non-zero elements of the ring's exceptional set using Horner's
// rule, all arithmetic carried out in R (spec.md §4.5).
func (d *Dealer) Share(secret galoisring.Element, rng RandSource) ([]Share, error) {
	points, err := d.ring.NonZeroExceptionalPoints(d.prime, d.n)
	if err != nil {
		return nil, err
	}

	coeffs := make([]galoisring.Element, d.threshold)
	coeffs[0] = secret

	for i := 1; i < d.threshold; i++ {
		elem, randErr := randomRingElement(d.ring, rng)
		if randErr != nil {
			return nil, randErr
		}

		coeffs[i] = elem
	}

	shares := make([]Share, d.n)
	for i, x := range points {
		shares[i] = Share{X: x, Y: evalHorner(d.ring, coeffs, x)}
	}

	return shares, nil
}

// randomRingElement draws d independent coefficients from [0, m) via rng
// and returns the corresponding (already-reduced, degree < d) element.
// Coefficients are carried as *big.Int throughout -- m may exceed 2^63 for
// large prime powers, so round-tripping through int64 would truncate them.
func randomRingElement(r *galoisring.Ring, rng RandSource) (galoisring.Element, error) {
	m := r.Modulus()
	coeffs := make([]*big.Int, r.Degree())

	for i := range coeffs {
		v, err := rng.Intn(m)
		if err != nil {
			return galoisring.Element{}, err
		}

		coeffs[i] = v
	}

	return r.NewElementFromBigInts(coeffs...), nil
}

// evalHorner evaluates P(x) = sum coeffs[j] * x^j in R via Horner's rule,
// the preferred schedule named in spec.md §4.5.
func evalHorner(r *galoisring.Ring, coeffs []galoisring.Element, x galoisring.Element) galoisring.Element {
	result := r.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = r.AddRing(coeffs[i], r.MulRing(result, x))
	}

	return result
}

// Combiner reconstructs the secret from a set of shares over a fixed
// ring. minShares, when positive, makes Reconstruct reject fewer shares
// than the threshold rather than silently returning a wrong value.
type Combiner struct {
	ring      *galoisring.Ring
	minShares int
}

// NewCombiner constructs a Combiner. minShares <= 0 disables the
// insufficient-shares check (spec.md §7 names it optional).
func NewCombiner(ring *galoisring.Ring, minShares int) *Combiner {
	return &Combiner{ring: ring, minShares: minShares}
}

// Reconstruct computes s = sum_i yi * Li(0), where
// Li(0) = prod_{j!=i} (-xj) / (xi - xj), all arithmetic in R
// (spec.md §4.5). Uses the negated-numerator form resolved in spec.md's
// Open Questions: the correct evaluation at X=0 is (0-xj)/(xi-xj).
func (c *Combiner) Reconstruct(shares []Share) (galoisring.Element, error) {
	if c.minShares > 0 && len(shares) < c.minShares {
		return galoisring.Element{}, ErrInsufficientShares
	}

	if err := checkDistinctPoints(shares); err != nil {
		return galoisring.Element{}, err
	}

	r := c.ring
	res := r.Zero()

	for i, si := range shares {
		li := r.NewElementFromInt64s(1)

		for j, sj := range shares {
			if i == j {
				continue
			}

			neg := r.SubRing(r.Zero(), sj.X) // -xj
			den := r.SubRing(si.X, sj.X)     // xi - xj

			denInv, ok := r.Inverse(den)
			if !ok {
				return galoisring.Element{}, ErrReconstructionDenominatorNotInvertible
			}

			li = r.MulRing(li, r.MulRing(neg, denInv))
		}

		res = r.AddRing(res, r.MulRing(si.Y, li))
	}

	return res, nil
}

func checkDistinctPoints(shares []Share) error {
	seen := make(map[string]struct{}, len(shares))

	for _, s := range shares {
		key := elementKey(s.X)
		if _, ok := seen[key]; ok {
			return ErrDuplicateEvaluationPoint
		}

		seen[key] = struct{}{}
	}

	return nil
}

func elementKey(e galoisring.Element) string {
	coeffs := e.Poly().Coeffs()

	var b []byte
	for _, c := range coeffs {
		v := c.Value().Bytes()
		b = append(b, byte(len(v)))
		b = append(b, v...)
	}

	return string(b)
}
