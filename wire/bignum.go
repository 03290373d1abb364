package wire

import (
	"errors"
	"io"
	"math/big"
)

// Errors returned for integer payloads that do not follow the canonical
// signed-magnitude encoding.
var (
	ErrEmptyBignum      = errors.New("wire: zero-length bignum")
	ErrNegativeBignum   = errors.New("wire: negative bignum")
	ErrNonMinimalBignum = errors.New("wire: bignum has redundant leading zero")
)

// MarshalBignum renders x as minimal big-endian bytes, with a single zero
// byte prepended when the top bit of the first magnitude byte is set so the
// value cannot be misread as negative.
func MarshalBignum(x *big.Int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, ErrNegativeBignum
	}
	b := x.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		b = append([]byte{0}, b...)
	}
	return b, nil
}

// ParseBignum converts an integer payload back to a big.Int. Negative
// values and non-canonical encodings are rejected; key fields are never
// zero, so an empty payload is rejected too.
func ParseBignum(b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, ErrEmptyBignum
	}
	if b[0]&0x80 != 0 {
		return nil, ErrNegativeBignum
	}
	if b[0] == 0 {
		if len(b) == 1 || b[1]&0x80 == 0 {
			return nil, ErrNonMinimalBignum
		}
		b = b[1:]
	}
	return new(big.Int).SetBytes(b), nil
}

// WriteBignum writes x preceded by the length of its encoding.
func WriteBignum(x *big.Int, w io.Writer) (int64, error) {
	b, err := MarshalBignum(x)
	if err != nil {
		return 0, err
	}
	return WriteBytes(b, w)
}

// ReadBignum reads a length-prefixed integer field.
func ReadBignum(r io.Reader) (*big.Int, int64, error) {
	b, n, err := ReadBytes(r)
	if err != nil {
		return nil, n, err
	}
	x, err := ParseBignum(b)
	return x, n, err
}
