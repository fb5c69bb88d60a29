package modint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticWrapsAround(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(7)

	x := FromInt64(5, m)
	y := FromInt64(4, m)

	a.Equal(big.NewInt(2), x.Add(y).Value())
	a.Equal(big.NewInt(1), x.Sub(y).Value())
	a.Equal(big.NewInt(6), x.Mul(y).Value())
	a.Equal(big.NewInt(2), x.Neg().Value())
}

func TestInverseModUnit(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(7)

	inv, ok := InverseMod(big.NewInt(3), m)
	a.True(ok)
	a.Equal(big.NewInt(5), inv) // 3*5 = 15 = 1 (mod 7)
}

func TestInverseModNonUnit(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(6)

	_, ok := InverseMod(big.NewInt(2), m)
	a.False(ok) // gcd(2,6) = 2
}

func TestInverseModZeroDivisorInPrimePowerModulus(t *testing.T) {
	a := assert.New(t)
	m := big.NewInt(4)

	_, ok := InverseMod(big.NewInt(2), m)
	a.False(ok) // 2*2 = 0 (mod 4): 2 is a zero divisor, not a unit.
}

func FuzzInverseMod(f *testing.F) {
	seeds := []int64{1, 3, 5, 7, 11, 123456789}
	for _, s := range seeds {
		f.Add(s, int64(9191248642791733759)) // p > 2^62, prime, from the teacher's own fuzz corpus.
	}

	f.Fuzz(func(t *testing.T, av, mv int64) {
		if mv <= 1 {
			t.Skip()
		}

		a := new(big.Int).Mod(big.NewInt(av), big.NewInt(mv))
		m := big.NewInt(mv)

		inv, ok := InverseMod(a, m)
		if !ok {
			return
		}

		product := new(big.Int).Mul(a, inv)
		product.Mod(product, m)

		if product.Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("InverseMod(%v, %v) = %v, but a*inv mod m = %v, want 1", av, mv, inv, product)
		}
	})
}
