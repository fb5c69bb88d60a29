package galoisring

import (
	"errors"
	"math/big"

	"github.com/nrkumar/galoisshare/poly"
)

// ErrTooManyParties is returned by Share when n exceeds the number of
// non-zero exceptional-set elements available, p^d - 1.
var ErrTooManyParties = errors.New("galoisring: n exceeds the number of available evaluation points")

// ExceptionalSet enumerates the p^d elements of R whose pairwise
// differences are all units -- the indispensable precondition for
// Lagrange interpolation denominators to be invertible (spec.md §4.4).
//
// For the canonical construction used here (m = p^k, f irreducible mod p),
// the set is exactly the representatives obtained by reducing each
// coefficient mod p: enumerate i from 0 to p^d - 1, write i in base p as a
// digit sequence of length d, and emit the corresponding degree-<d
// polynomial. This is the same base-p digit unpacking as
// original_source/organized.rs's generate_exceptional_set, generalized
// from base 2 to an arbitrary prime p.
//
// p is the characteristic of the residue field GF(p^d); callers with
// m = p^k pass p explicitly since a Ring alone (which only knows m) cannot
// recover p for composite prime powers without factoring.
func (r *Ring) ExceptionalSet(p *big.Int) []Element {
	d := r.d
	count := new(big.Int).Exp(p, big.NewInt(int64(d)), nil)
	n := count.Int64() // d and p are small enough in practice (p^d <= a few thousand) for int64.

	out := make([]Element, n)
	for i := int64(0); i < n; i++ {
		out[i] = r.digitsToElement(i, p, d)
	}

	return out
}

// digitsToElement writes i in base p as a digit sequence of length d,
// lowest digit first, and returns the corresponding ring element.
func (r *Ring) digitsToElement(i int64, p *big.Int, d int) Element {
	value := big.NewInt(i)
	pBig := new(big.Int).Set(p)

	coeffs := make([]int64, d)
	for j := 0; j < d; j++ {
		digit := new(big.Int)
		digit.Mod(value, pBig)
		coeffs[j] = digit.Int64()
		value.Div(value, pBig)
	}

	return r.Reduce(poly.FromInt64s(r.m, coeffs...))
}

// NonZeroExceptionalPoints returns the first n non-zero elements of the
// exceptional set, in ascending enumeration order, skipping only the zero
// element (index 0 in the canonical enumeration) -- these are the
// x-coordinates the dealer evaluates the sharing polynomial at, since
// P(0) would reveal the secret (spec.md §4.4, §9). The combiner has no
// such restriction and may use any subset, including one containing the
// zero element, but this helper is dealer-facing.
func (r *Ring) NonZeroExceptionalPoints(p *big.Int, n int) ([]Element, error) {
	set := r.ExceptionalSet(p)

	available := len(set) - 1 // excluding the zero element at index 0.
	if n > available {
		return nil, ErrTooManyParties
	}

	return set[1 : n+1], nil
}
