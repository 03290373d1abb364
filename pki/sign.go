package pki

import (
	"crypto"
	"crypto/dsa"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"fmt"
	"math"
	"math/big"
)

// The caller frames digests with a single leading byte the signer does not
// interpret; the signature covers the SHA-1 sized window after it.
const (
	digestOffset = 1
	digestWindow = sha1.Size
)

// DSASignature is the (r, s) pair produced by DSA signing.
type DSASignature struct {
	R, S *big.Int
}

// Signature is a raw signature over a digest. Exactly one payload is set,
// matching Family: RSA carries the PKCS#1 v1.5 signature bytes, DSA the
// (r, s) pair. Framing for transmission belongs to the protocol layer.
type Signature struct {
	Family Family
	RSA    []byte
	DSA    *DSASignature
}

// Sign produces a raw signature over digest using k's private half. The
// digest is expected pre-hashed by the caller; Sign consumes the fixed
// window described above and rejects anything shorter.
func Sign(k *Key, digest []byte) (*Signature, error) {
	switch k.family {
	case RSA, DSA:
	default:
		return nil, fmt.Errorf("%w: cannot sign with %s key", ErrUnsupportedAlgorithm, k.family)
	}
	if !k.IsPrivate() {
		return nil, fmt.Errorf("%w: %s key is public-only", ErrMissingPrivate, k.family)
	}
	if len(digest) < digestOffset+digestWindow {
		return nil, fmt.Errorf("%w: digest too short (%d bytes, need %d)",
			ErrSigning, len(digest), digestOffset+digestWindow)
	}
	window := digest[digestOffset : digestOffset+digestWindow]

	if k.family == RSA {
		priv, err := k.rsa.signer()
		if err != nil {
			return nil, err
		}
		sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA1, window)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSigning, err)
		}
		return &Signature{Family: RSA, RSA: sig}, nil
	}

	priv, err := k.dsa.signer()
	if err != nil {
		return nil, err
	}
	r, s, err := dsa.Sign(rand.Reader, priv, window)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return &Signature{Family: DSA, DSA: &DSASignature{R: r, S: s}}, nil
}

// signer builds the stdlib view of the key for the signature primitive. The
// stdlib struct shares the component values and never outlives the call.
func (c *RSAComponents) signer() (*rsa.PrivateKey, error) {
	if c == nil || c.N == nil || c.E == nil || c.D == nil {
		return nil, fmt.Errorf("%w: rsa private components", ErrIncompleteKey)
	}
	if !c.E.IsInt64() || c.E.Int64() > math.MaxInt {
		return nil, fmt.Errorf("%w: rsa public exponent too large for the primitive", ErrSigning)
	}
	priv := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: c.N, E: int(c.E.Int64())},
		D:         c.D,
	}
	if c.P != nil && c.Q != nil {
		priv.Primes = []*big.Int{c.P, c.Q}
		priv.Precompute()
	}
	return priv, nil
}

func (c *DSAComponents) signer() (*dsa.PrivateKey, error) {
	if c == nil || c.P == nil || c.Q == nil || c.G == nil || c.Y == nil || c.X == nil {
		return nil, fmt.Errorf("%w: dsa private components", ErrIncompleteKey)
	}
	return &dsa.PrivateKey{
		PublicKey: dsa.PublicKey{
			Parameters: dsa.Parameters{P: c.P, Q: c.Q, G: c.G},
			Y:          c.Y,
		},
		X: c.X,
	}, nil
}
