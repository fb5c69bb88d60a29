// Package galoisring implements arithmetic in the Galois ring
// R = (Z/mZ)[x]/f(x), where m = p^k for a prime p and f is irreducible of
// degree d modulo p. It wraps poly.Poly operations with reduction modulo
// f, exponentiation by repeated multiplication, the polynomial extended
// Euclidean algorithm, and inversion in R -- the tie-break needed when the
// GCD is a non-unit integer is the defining subtlety of rings that are not
// fields.
package galoisring

import (
	"errors"
	"math/big"

	"github.com/nrkumar/galoisshare/modint"
	"github.com/nrkumar/galoisshare/poly"
)

var (
	// ErrInvalidRingConfiguration is returned by New when m < 2 or f has
	// degree < 1 or a non-unit leading coefficient.
	ErrInvalidRingConfiguration = errors.New("galoisring: invalid ring configuration")

	// ErrZeroDivisorInRing is returned by InverseRing when the extended
	// Euclidean GCD is neither 1 nor a unit constant -- e is a zero
	// divisor in R and has no inverse.
	ErrZeroDivisorInRing = errors.New("galoisring: element is a zero divisor in the ring")
)

// Element is a ring element: a polynomial of degree < d, always reduced
// mod f with coefficients in [0, m). Element is a distinct type from
// poly.Poly so that the type system -- not caller discipline -- enforces
// reduction after every multiplication.
type Element struct {
	p poly.Poly
}

// Poly exposes the underlying free polynomial (degree < d by invariant).
func (e Element) Poly() poly.Poly { return e.p }

// IsZero reports whether the element is the ring's additive identity.
func (e Element) IsZero() bool { return e.p.IsZero() }

// Equal compares two ring elements by their reduced coefficient sequence.
func (e Element) Equal(o Element) bool { return e.p.Equal(o.p) }

// Ring is an immutable configuration: modulus m and irreducible polynomial
// f of degree d. Every Element returned by a Ring method has degree < d
// and coefficients in [0, m).
type Ring struct {
	m *big.Int
	f poly.Poly
	d int
}

// New constructs a ring. Precondition: m >= 2, f has degree >= 1 with a
// unit leading coefficient mod m. New does not verify that f is
// irreducible; callers are responsible for that (spec.md §6).
func New(m *big.Int, f poly.Poly) (*Ring, error) {
	if m.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrInvalidRingConfiguration
	}

	if f.Degree() < 1 {
		return nil, ErrInvalidRingConfiguration
	}

	if _, ok := f.LeadCoeff().Inverse(); !ok {
		return nil, ErrInvalidRingConfiguration
	}

	return &Ring{m: new(big.Int).Set(m), f: f.Trim(), d: f.Degree()}, nil
}

// Modulus returns m.
func (r *Ring) Modulus() *big.Int { return new(big.Int).Set(r.m) }

// Degree returns d, the degree of the defining irreducible polynomial.
func (r *Ring) Degree() int { return r.d }

// Reduce lifts a free polynomial into the ring by reducing it modulo f.
func (r *Ring) Reduce(p poly.Poly) Element {
	_, rem, err := p.LongDivide(r.f)
	if err != nil {
		// f's leading coefficient is validated as a unit in New; this
		// cannot happen for polynomials built from the ring's own modulus.
		panic(err)
	}

	return Element{p: rem}
}

// Zero returns the ring's additive identity.
func (r *Ring) Zero() Element { return Element{p: poly.Zero(r.m)} }

// NewElementFromInt64s builds and reduces a ring element from literal
// coefficients, lowest-degree first -- a convenience used throughout the
// test suite.
func (r *Ring) NewElementFromInt64s(vals ...int64) Element {
	return r.Reduce(poly.FromInt64s(r.m, vals...))
}

// NewElementFromBigInts builds and reduces a ring element from arbitrary-
// precision coefficients, lowest-degree first. Unlike NewElementFromInt64s,
// this does not truncate at 2^63 -- callers sampling coefficients from a
// modulus m that does not fit in an int64 (m = p^k for large p or k) must
// use this constructor instead.
func (r *Ring) NewElementFromBigInts(vals ...*big.Int) Element {
	coeffs := make([]modint.Int, len(vals))
	for i, v := range vals {
		coeffs[i] = modint.New(v, r.m)
	}

	return r.Reduce(poly.New(r.m, coeffs))
}

// AddRing and SubRing delegate to Poly add/sub: because addition cannot
// raise the degree, no reduction mod f is needed.
func (r *Ring) AddRing(a, b Element) Element { return Element{p: a.p.Add(b.p)} }
func (r *Ring) SubRing(a, b Element) Element { return Element{p: a.p.Sub(b.p)} }

// MulRing computes the Poly product and reduces it modulo f.
func (r *Ring) MulRing(a, b Element) Element {
	return r.Reduce(a.p.Mul(b.p))
}

// PowRing computes a^e in R via repeated squaring. PowRing(a, 0) = 1
// regardless of a (including a = 0), matching the ring convention.
func (r *Ring) PowRing(a Element, e uint64) Element {
	result := r.NewElementFromInt64s(1)
	base := a

	for e > 0 {
		if e&1 == 1 {
			result = r.MulRing(result, base)
		}

		base = r.MulRing(base, base)
		e >>= 1
	}

	return result
}

// ExtendedEuclideanPoly runs the polynomial extended Euclidean algorithm
// on free polynomials a and b, returning (g, u, v) such that
// u*a + v*b = g (mod m). Termination is guaranteed because the remainder's
// degree strictly decreases each iteration; the loop halts precisely when
// the remainder is the zero polynomial -- not on an iteration cap, and not
// on a leading-coefficient zero test, both of which the source got wrong
// (spec.md §9).
func ExtendedEuclideanPoly(m *big.Int, a, b poly.Poly) (g, u, v poly.Poly, err error) {
	oldR, r := a, b
	oldS, s := poly.FromInt64s(m, 1), poly.FromInt64s(m, 0)
	oldT, t := poly.FromInt64s(m, 0), poly.FromInt64s(m, 1)

	for !r.IsZero() {
		q, rem, divErr := oldR.LongDivide(r)
		if divErr != nil {
			return poly.Poly{}, poly.Poly{}, poly.Poly{}, divErr
		}

		oldR, r = r, rem
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}

	return oldR, oldS, oldT, nil
}

// InverseRing computes the multiplicative inverse of e in R, or returns
// ErrZeroDivisorInRing when e is not a unit. It runs the extended
// Euclidean algorithm against the ring's defining polynomial f and
// resolves the three cases named in spec.md §4.3:
//
//  1. gcd = 1 (as a polynomial): the Bezout coefficient v of e, reduced
//     mod f, is already the inverse.
//  2. gcd is a non-zero constant c that is a unit mod m: the inverse is
//     c^-1 * v, reduced mod f. This case has no analogue over a field,
//     where every non-zero constant is automatically a unit.
//  3. Otherwise (gcd is non-constant, or a constant zero divisor mod m):
//     e is a zero divisor in R and has no inverse.
func (r *Ring) InverseRing(e Element) (Element, error) {
	// u*f + v*e = g, so v*e = g (mod f): v, not u, is the Bezout
	// coefficient of e and is therefore the candidate inverse below.
	g, _, v, err := ExtendedEuclideanPoly(r.m, r.f, e.p)
	if err != nil {
		// A NotInvertible division inside the Euclidean loop means some
		// remainder's leading coefficient is a zero divisor mod m -- over
		// a field this never happens, but over R it is exactly the "e is
		// a zero divisor" case, so it is reported the same way case 3
		// below is.
		return Element{}, ErrZeroDivisorInRing
	}

	switch {
	case g.Degree() == 0 && g.Coeff(0).Equal(modint.FromInt64(1, r.m)):
		return r.Reduce(v), nil

	case g.Degree() == 0 && !g.Coeff(0).IsZero():
		cInv, ok := g.Coeff(0).Inverse()
		if !ok {
			return Element{}, ErrZeroDivisorInRing
		}

		return r.Reduce(v.MulScalar(cInv)), nil

	default:
		return Element{}, ErrZeroDivisorInRing
	}
}

// Inverse is the Ring.inverse(e) entry point named in spec.md §6: returns
// (element, true) on success, (zero, false) when e is a zero divisor.
func (r *Ring) Inverse(e Element) (Element, bool) {
	inv, err := r.InverseRing(e)
	if err != nil {
		return Element{}, false
	}

	return inv, true
}
