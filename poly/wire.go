package poly

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/nrkumar/galoisshare/modint"
)

// ErrTruncatedWireFormat is returned by Decode when the buffer ends before
// the declared coefficient count is satisfied.
var ErrTruncatedWireFormat = errors.New("poly: truncated wire format")

// Encode serializes a polynomial as a length-prefixed sequence of
// coefficient integers in little-endian order (c0 first), the wire
// format named in spec.md §6. The modulus itself is not part of the
// encoding; callers know it out of band (it is part of the Ring they
// decode into).
func (p Poly) Encode() []byte {
	trimmed := p.Trim()
	coeffs := trimmed.Coeffs()

	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, uint32(len(coeffs)))

	for _, c := range coeffs {
		b := c.Value().Bytes()

		lenBuf := make([]byte, 4)
		binary.LittleEndian.PutUint32(lenBuf, uint32(len(b)))

		out = append(out, lenBuf...)
		out = append(out, b...)
	}

	return out
}

// Decode parses the wire format produced by Encode, reducing each
// coefficient modulo m.
func Decode(m *big.Int, data []byte) (Poly, error) {
	if len(data) < 4 {
		return Poly{}, ErrTruncatedWireFormat
	}

	count := binary.LittleEndian.Uint32(data[:4])
	data = data[4:]

	coeffs := make([]modint.Int, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(data) < 4 {
			return Poly{}, ErrTruncatedWireFormat
		}

		n := binary.LittleEndian.Uint32(data[:4])
		data = data[4:]

		if uint32(len(data)) < n {
			return Poly{}, ErrTruncatedWireFormat
		}

		val := new(big.Int).SetBytes(data[:n])
		data = data[n:]

		coeffs = append(coeffs, modint.New(val, m))
	}

	return New(m, coeffs), nil
}
