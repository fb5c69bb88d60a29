// Package poly implements dense univariate polynomials with coefficients
// in Z/mZ: add, sub, mul, scalar mul, degree, trim, equality, and long
// division. All operations are pure; inputs are never mutated.
package poly

import (
	"errors"
	"math/big"

	"github.com/nrkumar/galoisshare/modint"
)

// ErrNotInvertible is returned by LongDivide when the divisor's leading
// coefficient is a zero divisor mod m, and by any caller of modint.Inverse
// that hits a non-unit coefficient during division.
var ErrNotInvertible = errors.New("poly: leading coefficient is not invertible mod m")

// Poly is coeffs c0, c1, ..., cD where c_i is the coefficient of x^i,
// ordered lowest-degree first. Storage may carry trailing zeros; Degree
// always reports the highest non-zero index.
type Poly struct {
	m      *big.Int
	coeffs []modint.Int
}

// New builds a polynomial from coefficients already reduced mod m.
func New(m *big.Int, coeffs []modint.Int) Poly {
	cp := make([]modint.Int, len(coeffs))
	copy(cp, coeffs)

	return Poly{m: m, coeffs: cp}
}

// Zero returns the zero polynomial over Z/mZ.
func Zero(m *big.Int) Poly {
	return Poly{m: m, coeffs: nil}
}

// FromInt64s is a convenience constructor for literal test data.
func FromInt64s(m *big.Int, vals ...int64) Poly {
	coeffs := make([]modint.Int, len(vals))
	for i, v := range vals {
		coeffs[i] = modint.FromInt64(v, m)
	}

	return New(m, coeffs)
}

// Modulus returns the modulus coefficients are reduced under.
func (p Poly) Modulus() *big.Int { return p.m }

// Degree is the index of the last non-zero coefficient, or -1 for the zero
// polynomial. This explicit sentinel avoids the source's collision between
// an empty-coefficient zero polynomial and a degree-0 constant.
func (p Poly) Degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if !p.coeffs[i].IsZero() {
			return i
		}
	}

	return -1
}

// IsZero reports whether every coefficient is zero.
func (p Poly) IsZero() bool { return p.Degree() < 0 }

// Coeff returns the coefficient of x^i, or the zero element if i exceeds
// the stored length.
func (p Poly) Coeff(i int) modint.Int {
	if i < 0 || i >= len(p.coeffs) {
		return modint.New(big.NewInt(0), p.m)
	}

	return p.coeffs[i]
}

// LeadCoeff returns the coefficient at Degree(), or zero for the zero
// polynomial.
func (p Poly) LeadCoeff() modint.Int {
	d := p.Degree()
	if d < 0 {
		return modint.New(big.NewInt(0), p.m)
	}

	return p.coeffs[d]
}

// Trim returns a copy with trailing zero coefficients removed. The zero
// polynomial trims to an empty coefficient sequence.
func (p Poly) Trim() Poly {
	d := p.Degree()
	if d < 0 {
		return Zero(p.m)
	}

	return New(p.m, p.coeffs[:d+1])
}

// Equal compares two polynomials by coefficient sequence after trimming.
func (p Poly) Equal(q Poly) bool {
	pt, qt := p.Trim(), q.Trim()
	if len(pt.coeffs) != len(qt.coeffs) {
		return false
	}

	for i := range pt.coeffs {
		if !pt.coeffs[i].Equal(qt.coeffs[i]) {
			return false
		}
	}

	return true
}

func (p Poly) zero() modint.Int { return modint.New(big.NewInt(0), p.m) }

// Add pads the shorter operand with zeros and adds coefficient-wise.
func (p Poly) Add(q Poly) Poly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}

	out := make([]modint.Int, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coeff(i).Add(q.Coeff(i))
	}

	return New(p.m, out).Trim()
}

// Sub pads the shorter operand with zeros and subtracts coefficient-wise;
// modint.Sub already canonicalizes negative results into [0, m).
func (p Poly) Sub(q Poly) Poly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}

	out := make([]modint.Int, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coeff(i).Sub(q.Coeff(i))
	}

	return New(p.m, out).Trim()
}

// Mul computes the schoolbook O(|p|*|q|) product.
func (p Poly) Mul(q Poly) Poly {
	pd, qd := p.Degree(), q.Degree()
	if pd < 0 || qd < 0 {
		return Zero(p.m)
	}

	out := make([]modint.Int, pd+qd+1)
	for i := range out {
		out[i] = p.zero()
	}

	for i := 0; i <= pd; i++ {
		if p.coeffs[i].IsZero() {
			continue
		}

		for j := 0; j <= qd; j++ {
			out[i+j] = out[i+j].Add(p.coeffs[i].Mul(q.coeffs[j]))
		}
	}

	return New(p.m, out).Trim()
}

// MulScalar multiplies every coefficient by s.
func (p Poly) MulScalar(s modint.Int) Poly {
	out := make([]modint.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Mul(s)
	}

	return New(p.m, out).Trim()
}

// monomial returns the single-term polynomial coeff * x^deg.
func monomial(m *big.Int, coeff modint.Int, deg int) Poly {
	out := make([]modint.Int, deg+1)
	zero := modint.New(big.NewInt(0), m)
	for i := range out {
		out[i] = zero
	}

	out[deg] = coeff

	return New(m, out)
}

// Eval evaluates the polynomial at x via Horner's rule.
func (p Poly) Eval(x modint.Int) modint.Int {
	result := p.zero()

	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = p.coeffs[i].Add(result.Mul(x))
	}

	return result
}

// LongDivide implements Algorithm 2.5 (polynomial division with remainder)
// in von zur Gathen & Gerhard's "Modern Computer Algebra" -- the same
// reference the teacher's field.Polynomial.LongDiv cites -- generalized
// to a non-prime modulus: when the divisor's leading coefficient is a zero
// divisor mod m, division fails with ErrNotInvertible instead of silently
// computing a wrong quotient.
//
// Returns (quotient, remainder), both trimmed, satisfying
// dividend = quotient*divisor + remainder (mod m) with deg(remainder) <
// deg(divisor).
func (dividend Poly) LongDivide(divisor Poly) (q, r Poly, err error) {
	divisor = divisor.Trim()

	n, dm := dividend.Degree(), divisor.Degree()
	if dm < 0 {
		return Poly{}, Poly{}, errors.New("poly: division by the zero polynomial")
	}

	leadInv, ok := divisor.LeadCoeff().Inverse()
	if !ok {
		return Poly{}, Poly{}, ErrNotInvertible
	}

	if n < dm {
		return Zero(dividend.m), dividend.Trim(), nil
	}

	qCoeffs := make([]modint.Int, n-dm+1)
	zero := dividend.zero()
	for i := range qCoeffs {
		qCoeffs[i] = zero
	}

	rem := dividend.Trim()

	for rem.Degree() >= dm && !rem.IsZero() {
		degreeDiff := rem.Degree() - dm
		qc := rem.LeadCoeff().Mul(leadInv)

		qCoeffs[degreeDiff] = qc

		term := monomial(dividend.m, qc, degreeDiff)
		rem = rem.Sub(divisor.Mul(term)).Trim()
	}

	return New(dividend.m, qCoeffs).Trim(), rem, nil
}

// Coeffs returns a defensive copy of the (untrimmed) coefficient sequence,
// lowest degree first -- used by the wire format encoder.
func (p Poly) Coeffs() []modint.Int {
	out := make([]modint.Int, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Len reports the number of stored coefficients (may include trailing
// zeros); prefer Degree()+1 for the true coefficient count.
func (p Poly) Len() int { return len(p.coeffs) }
