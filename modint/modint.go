// Package modint implements arbitrary-precision integers reduced modulo m.
//
// Every Int produced by this package is canonicalized to its non-negative
// representative in [0, m), matching the invariant in the data model: a
// value-type with no mutation after construction.
package modint

import "math/big"

// Int is an element of Z/mZ, always held in its canonical [0, m) form.
type Int struct {
	v *big.Int
	m *big.Int
}

// New reduces val modulo m and returns the canonicalized element.
// Panics if m is not positive; callers validate ring configuration before
// ever reaching this constructor (see galoisring.New).
func New(val, m *big.Int) Int {
	if m.Sign() <= 0 {
		panic("modint: modulus must be positive")
	}

	v := new(big.Int).Mod(val, m)

	return Int{v: v, m: new(big.Int).Set(m)}
}

// FromInt64 is a convenience constructor for small literal values in tests.
func FromInt64(val int64, m *big.Int) Int {
	return New(big.NewInt(val), m)
}

// Modulus returns the modulus this element is reduced under.
func (a Int) Modulus() *big.Int { return a.m }

// Value returns the canonical non-negative representative as a fresh big.Int.
func (a Int) Value() *big.Int { return new(big.Int).Set(a.v) }

// IsZero reports whether the element is the additive identity.
func (a Int) IsZero() bool { return a.v.Sign() == 0 }

func (a Int) Add(b Int) Int { return New(new(big.Int).Add(a.v, b.v), a.m) }
func (a Int) Sub(b Int) Int { return New(new(big.Int).Sub(a.v, b.v), a.m) }
func (a Int) Mul(b Int) Int { return New(new(big.Int).Mul(a.v, b.v), a.m) }
func (a Int) Neg() Int      { return New(new(big.Int).Neg(a.v), a.m) }

// Equal compares two elements by value; moduli are expected to match by
// construction discipline (callers never mix elements of different Z/mZ).
func (a Int) Equal(b Int) bool { return a.v.Cmp(b.v) == 0 }

// Inverse returns the multiplicative inverse of a, or ok=false if a is a
// zero divisor (including a itself being zero).
func (a Int) Inverse() (Int, bool) {
	inv, ok := InverseMod(a.v, a.m)
	if !ok {
		return Int{}, false
	}

	return Int{v: inv, m: new(big.Int).Set(a.m)}, true
}

// InverseMod runs the extended Euclidean algorithm on a and m and returns
// the canonicalized inverse of a modulo m, or ok=false when a is not a unit
// (gcd(a, m) != 1).
//
// This mirrors the loop in spec.md §4.1: maintain (r, new_r) starting at
// (m, a) and (t, new_t) starting at (0, 1); at each step divide r by new_r
// and update both pairs with the same quotient; stop once new_r reaches
// zero. If the final r exceeds 1, a has no inverse.
func InverseMod(a, m *big.Int) (*big.Int, bool) {
	r := new(big.Int).Set(m)
	newR := new(big.Int).Mod(a, m)

	t := big.NewInt(0)
	newT := big.NewInt(1)

	for newR.Sign() != 0 {
		q := new(big.Int).Div(r, newR)

		nextR := new(big.Int).Sub(r, new(big.Int).Mul(q, newR))
		r, newR = newR, nextR

		nextT := new(big.Int).Sub(t, new(big.Int).Mul(q, newT))
		t, newT = newT, nextT
	}

	one := big.NewInt(1)
	if r.Cmp(one) > 0 {
		return nil, false
	}

	result := new(big.Int).Mod(t, m)
	result.Add(result, m)
	result.Mod(result, m)

	return result, true
}
