package sss

import (
	"encoding/binary"

	"github.com/nrkumar/galoisshare/galoisring"
	"github.com/nrkumar/galoisshare/poly"
)

// EncodeShare serializes a share as its two constituent polynomials (x
// then y), each in the poly.Encode wire format, preceded by the byte
// length of the x encoding as a 4-byte little-endian uint32
// (spec.md §6: "a share is two polynomials").
func EncodeShare(s Share) []byte {
	xb := s.X.Poly().Encode()
	yb := s.Y.Poly().Encode()

	out := make([]byte, 4+len(xb)+len(yb))
	binary.LittleEndian.PutUint32(out, uint32(len(xb)))
	copy(out[4:], xb)
	copy(out[4+len(xb):], yb)

	return out
}

// DecodeShare parses the format produced by EncodeShare and reduces both
// polynomials into ring elements via r.
func DecodeShare(r *galoisring.Ring, data []byte) (Share, error) {
	if len(data) < 4 {
		return Share{}, ErrTruncatedShare
	}

	xLen := binary.LittleEndian.Uint32(data[:4])
	data = data[4:]

	if uint32(len(data)) < xLen {
		return Share{}, ErrTruncatedShare
	}

	xPoly, err := poly.Decode(r.Modulus(), data[:xLen])
	if err != nil {
		return Share{}, err
	}

	yPoly, err := poly.Decode(r.Modulus(), data[xLen:])
	if err != nil {
		return Share{}, err
	}

	return Share{X: r.Reduce(xPoly), Y: r.Reduce(yPoly)}, nil
}

var ErrTruncatedShare = poly.ErrTruncatedWireFormat
