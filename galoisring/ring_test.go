package galoisring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrkumar/galoisshare/poly"
)

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	a := assert.New(t)

	t.Run("modulusTooSmall", func(t *testing.T) {
		f := poly.FromInt64s(big.NewInt(1), 1, 0, 1)
		_, err := New(big.NewInt(1), f)
		a.ErrorIs(err, ErrInvalidRingConfiguration)
	})

	t.Run("degreeTooSmall", func(t *testing.T) {
		m := big.NewInt(7)
		f := poly.FromInt64s(m, 3)
		_, err := New(m, f)
		a.ErrorIs(err, ErrInvalidRingConfiguration)
	})

	t.Run("nonUnitLeadingCoefficient", func(t *testing.T) {
		m := big.NewInt(6)
		f := poly.FromInt64s(m, 1, 0, 2) // leading coeff 2, gcd(2,6)=2
		_, err := New(m, f)
		a.ErrorIs(err, ErrInvalidRingConfiguration)
	})
}

// S1 (field case, sanity): R with m=7, f=x^2+1 (irreducible mod 7).
func TestRingArithmeticFieldCase(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(7)
	f := poly.FromInt64s(m, 1, 0, 1)

	r, err := New(m, f)
	a.NoError(err)

	x := r.NewElementFromInt64s(0, 1)
	one := r.NewElementFromInt64s(1)

	diff := r.SubRing(x, one)
	inv, err := r.InverseRing(diff)
	a.NoError(err)

	a.True(r.MulRing(diff, inv).Equal(one))
}

// S2 (ring case, power of prime): m=4, f=x^3+x+1. Exceptional set has 8
// elements; verify all 28 pairwise differences are invertible, and that
// (x) - (1) is invertible.
func TestExceptionalSetDifferencesAreUnitsScenarioS2(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(4)
	f := poly.FromInt64s(m, 1, 1, 0, 1)

	r, err := New(m, f)
	a.NoError(err)

	set := r.ExceptionalSet(big.NewInt(2))
	a.Len(set, 8)

	checked := 0
	for i := range set {
		for j := range set {
			if i == j {
				continue
			}

			diff := r.SubRing(set[i], set[j])
			_, invErr := r.InverseRing(diff)
			a.NoError(invErr, "set[%d]-set[%d] = %v should be a unit", i, j, diff.Poly().Coeffs())
			checked++
		}
	}

	a.Equal(8*7, checked) // 28 unordered pairs, 56 ordered.

	// (x) - (1) must be invertible.
	one := r.NewElementFromInt64s(1)
	xElem := r.NewElementFromInt64s(0, 1)
	_, err = r.InverseRing(r.SubRing(xElem, one))
	a.NoError(err)
}

// S5 (zero divisor in ring): m=4, f=x^2+x+1; inverting 2 (2*2=0 mod 4)
// must fail.
func TestInverseRingZeroDivisorScenarioS5(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(4)
	f := poly.FromInt64s(m, 1, 1, 1)

	r, err := New(m, f)
	a.NoError(err)

	two := r.NewElementFromInt64s(2)
	_, err = r.InverseRing(two)
	a.ErrorIs(err, ErrZeroDivisorInRing)

	_, ok := r.Inverse(two)
	a.False(ok)
}

// Invariant 2: for all e with inverse_ring(e) = Some(e^-1), e*e^-1 = 1.
func TestRingInverseInvariant(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(7)
	f := poly.FromInt64s(m, 1, 0, 1) // x^2+1, irreducible mod 7 (-1 is a non-residue).

	r, err := New(m, f)
	a.NoError(err)

	one := r.NewElementFromInt64s(1)

	for _, vals := range [][]int64{{1}, {2}, {0, 1}, {1, 1}, {3, 5}} {
		e := r.NewElementFromInt64s(vals...)
		if e.IsZero() {
			continue
		}

		inv, invErr := r.InverseRing(e)
		if invErr != nil {
			continue // not every element of an arbitrary modulus/poly pair is a unit.
		}

		a.True(r.MulRing(e, inv).Equal(one), "e=%v inv=%v", vals, inv.Poly().Coeffs())
	}
}

// Invariant 6: reducing a ring element by f twice equals reducing it once.
func TestReductionIsIdempotent(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(7)
	f := poly.FromInt64s(m, 1, 0, 1)

	r, err := New(m, f)
	a.NoError(err)

	p := poly.FromInt64s(m, 5, 4, 3, 2, 1)
	once := r.Reduce(p)
	twice := r.Reduce(once.Poly())

	a.True(once.Equal(twice))
}

func TestPowRing(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(7)
	f := poly.FromInt64s(m, 1, 0, 1)

	r, err := New(m, f)
	a.NoError(err)

	x := r.NewElementFromInt64s(0, 1)
	one := r.NewElementFromInt64s(1)

	a.True(r.PowRing(x, 0).Equal(one))
	a.True(r.PowRing(x, 1).Equal(x))
	a.True(r.PowRing(x, 2).Equal(r.MulRing(x, x)))
}
