package pki

import "math/big"

// Family identifies the algorithm family of a Key.
type Family uint8

// Known Family values
const (
	Unknown Family = iota
	RSA
	DSA
)

// TypeName returns the protocol's canonical algorithm identifier, or the
// empty string for unsupported families.
func (f Family) TypeName() string {
	switch f {
	case RSA:
		return "ssh-rsa"
	case DSA:
		return "ssh-dss"
	}
	return ""
}

func (f Family) String() string {
	switch f {
	case RSA:
		return "RSA"
	case DSA:
		return "DSA"
	}
	return "unknown"
}

// Flags records which halves of the key material are present. FlagPrivate
// implies FlagPublic.
type Flags uint8

// Known Flags values
const (
	FlagPublic Flags = 1 << iota
	FlagPrivate
)

// RSAComponents holds the numeric fields of an RSA key. N and E are always
// present. D is present on private keys; the primes and CRT values make
// signing faster when available but are not required.
type RSAComponents struct {
	N *big.Int // public modulus
	E *big.Int // public exponent
	D *big.Int // private exponent

	P, Q         *big.Int // secret prime factors
	Dp, Dq, Qinv *big.Int // d mod (p-1), d mod (q-1), q^-1 mod p
}

// DSAComponents holds the numeric fields of a DSA key.
type DSAComponents struct {
	P *big.Int // prime modulus
	Q *big.Int // 160-bit subprime, q | p-1
	G *big.Int // generator of the subgroup
	Y *big.Int // public value y = g^x
	X *big.Int // private exponent
}

// Key is one asymmetric key, public or public+private. Exactly one family's
// component set is populated. Keys are created by Duplicate,
// DecodePrivateKey, DecodePublicKey, or the Build*PublicKey constructors,
// and never share numeric fields with another Key; Duplicate is the only
// way to copy one.
type Key struct {
	family Family
	flags  Flags
	rsa    *RSAComponents
	dsa    *DSAComponents
}

// Family returns the algorithm family tag.
func (k *Key) Family() Family { return k.family }

// Flags returns the public/private flag set.
func (k *Key) Flags() Flags { return k.flags }

// TypeName returns the protocol's canonical algorithm identifier for k.
func (k *Key) TypeName() string { return k.family.TypeName() }

// IsPrivate reports whether the private half is present.
func (k *Key) IsPrivate() bool { return k.flags&FlagPrivate != 0 }

// RSA returns the RSA components, or nil for other families.
func (k *Key) RSA() *RSAComponents { return k.rsa }

// DSA returns the DSA components, or nil for other families.
func (k *Key) DSA() *DSAComponents { return k.dsa }

// Destroy zeroes the backing words of every secret field and drops all
// component references. The Key is unusable afterwards. Public fields are
// not zeroed.
func (k *Key) Destroy() {
	if k.rsa != nil {
		wipeBig(k.rsa.D)
		wipeBig(k.rsa.P)
		wipeBig(k.rsa.Q)
		wipeBig(k.rsa.Dp)
		wipeBig(k.rsa.Dq)
		wipeBig(k.rsa.Qinv)
		*k.rsa = RSAComponents{}
		k.rsa = nil
	}
	if k.dsa != nil {
		wipeBig(k.dsa.X)
		*k.dsa = DSAComponents{}
		k.dsa = nil
	}
	k.family = Unknown
	k.flags = 0
}

// wipeBig zeroes x's backing storage. Safe on nil.
func wipeBig(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)
}

// wipeBytes zeroes b.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
