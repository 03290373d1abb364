package pki

import (
	"bytes"
	"fmt"
	"math/big"

	"skiff.network/skiff/wire"
)

// BuildRSAPublicKey assembles a public-only RSA key from already-parsed
// wire integers: public exponent e and modulus n.
func BuildRSAPublicKey(e, n []byte) (*Key, error) {
	c := new(RSAComponents)
	fields := []struct {
		dst  **big.Int
		raw  []byte
		name string
	}{
		{&c.E, e, "rsa public exponent"},
		{&c.N, n, "rsa modulus"},
	}
	for _, f := range fields {
		x, err := wire.ParseBignum(f.raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedField, f.name, err)
		}
		*f.dst = x
	}
	return &Key{family: RSA, flags: FlagPublic, rsa: c}, nil
}

// BuildDSAPublicKey assembles a public-only DSA key from the prime p,
// subprime q, generator g, and public value y.
func BuildDSAPublicKey(p, q, g, y []byte) (*Key, error) {
	c := new(DSAComponents)
	fields := []struct {
		dst  **big.Int
		raw  []byte
		name string
	}{
		{&c.P, p, "dsa prime"},
		{&c.Q, q, "dsa subprime"},
		{&c.G, g, "dsa generator"},
		{&c.Y, y, "dsa public value"},
	}
	for _, f := range fields {
		x, err := wire.ParseBignum(f.raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedField, f.name, err)
		}
		*f.dst = x
	}
	return &Key{family: DSA, flags: FlagPublic, dsa: c}, nil
}

// DecodePublicKey parses a key blob produced by EncodePublicKey, or
// received from a peer, back into a public-only Key.
func DecodePublicKey(blob []byte) (*Key, error) {
	r := bytes.NewReader(blob)
	name, _, err := wire.ReadString(r)
	if err != nil {
		return nil, fmt.Errorf("%w: type name: %v", ErrMalformedField, err)
	}

	var key *Key
	switch name {
	case RSA.TypeName():
		fields, err := readFields(r, 2)
		if err != nil {
			return nil, err
		}
		key, err = BuildRSAPublicKey(fields[0], fields[1])
		if err != nil {
			return nil, err
		}
	case DSA.TypeName():
		fields, err := readFields(r, 4)
		if err != nil {
			return nil, err
		}
		key, err = BuildDSAPublicKey(fields[0], fields[1], fields[2], fields[3])
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}

	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after key blob", ErrMalformedField, r.Len())
	}
	return key, nil
}

func readFields(r *bytes.Reader, count int) ([][]byte, error) {
	fields := make([][]byte, count)
	for i := range fields {
		b, _, err := wire.ReadBytes(r)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %v", ErrMalformedField, i, err)
		}
		fields[i] = b
	}
	return fields, nil
}
