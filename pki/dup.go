package pki

import (
	"fmt"
	"math/big"
)

// Duplicate returns a deep copy of k. Every numeric field of the copy has
// its own backing storage. With demote set, the private half is dropped and
// the copy carries only public material regardless of k's flags. On any
// failure the partial copy is destroyed before returning.
func Duplicate(k *Key, demote bool) (*Key, error) {
	out := &Key{
		family: k.family,
		flags:  k.flags,
	}
	if demote {
		out.flags &^= FlagPrivate
	}

	var err error
	switch k.family {
	case RSA:
		out.rsa, err = dupRSA(k.rsa, out.flags)
	case DSA:
		out.dsa, err = dupDSA(k.dsa, out.flags)
	default:
		return nil, fmt.Errorf("%w: cannot duplicate %s key", ErrUnsupportedAlgorithm, k.family)
	}
	if err != nil {
		out.Destroy()
		return nil, err
	}
	return out, nil
}

func dupRSA(src *RSAComponents, flags Flags) (*RSAComponents, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no RSA components", ErrIncompleteKey)
	}
	dst := new(RSAComponents)
	if err := dupBig(&dst.N, src.N, "rsa modulus"); err != nil {
		return dst, err
	}
	if err := dupBig(&dst.E, src.E, "rsa public exponent"); err != nil {
		return dst, err
	}
	if flags&FlagPrivate == 0 {
		return dst, nil
	}
	if err := dupBig(&dst.D, src.D, "rsa private exponent"); err != nil {
		return dst, err
	}
	// The primes and CRT values may be absent from a private key; RSA
	// signing is just faster when they are around.
	optional := []struct {
		dst **big.Int
		src *big.Int
	}{
		{&dst.P, src.P},
		{&dst.Q, src.Q},
		{&dst.Dp, src.Dp},
		{&dst.Dq, src.Dq},
		{&dst.Qinv, src.Qinv},
	}
	for _, f := range optional {
		if f.src == nil {
			continue
		}
		*f.dst = new(big.Int).Set(f.src)
	}
	return dst, nil
}

func dupDSA(src *DSAComponents, flags Flags) (*DSAComponents, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no DSA components", ErrIncompleteKey)
	}
	dst := new(DSAComponents)
	if err := dupBig(&dst.P, src.P, "dsa prime"); err != nil {
		return dst, err
	}
	if err := dupBig(&dst.Q, src.Q, "dsa subprime"); err != nil {
		return dst, err
	}
	if err := dupBig(&dst.G, src.G, "dsa generator"); err != nil {
		return dst, err
	}
	if err := dupBig(&dst.Y, src.Y, "dsa public value"); err != nil {
		return dst, err
	}
	if flags&FlagPrivate == 0 {
		return dst, nil
	}
	if err := dupBig(&dst.X, src.X, "dsa private exponent"); err != nil {
		return dst, err
	}
	return dst, nil
}

// dupBig copies src into a fresh big.Int at *dst. A required field that is
// absent fails the whole duplication.
func dupBig(dst **big.Int, src *big.Int, name string) error {
	if src == nil {
		return fmt.Errorf("%w: %s", ErrIncompleteKey, name)
	}
	*dst = new(big.Int).Set(src)
	return nil
}
