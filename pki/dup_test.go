package pki

import (
	"errors"
	"math/big"
	"testing"

	"gotest.tools/assert"
)

func TestDuplicateFidelityRSA(t *testing.T) {
	k := decodeFixture(t, "rsa.pem")

	d, err := Duplicate(k, false)
	assert.NilError(t, err)
	assert.Equal(t, d.Family(), k.Family())
	assert.Equal(t, d.Flags(), k.Flags())

	pairs := []struct {
		name     string
		src, dst *big.Int
	}{
		{"N", k.RSA().N, d.RSA().N},
		{"E", k.RSA().E, d.RSA().E},
		{"D", k.RSA().D, d.RSA().D},
		{"P", k.RSA().P, d.RSA().P},
		{"Q", k.RSA().Q, d.RSA().Q},
		{"Dp", k.RSA().Dp, d.RSA().Dp},
		{"Dq", k.RSA().Dq, d.RSA().Dq},
		{"Qinv", k.RSA().Qinv, d.RSA().Qinv},
	}
	for _, p := range pairs {
		assert.Assert(t, p.dst != nil, p.name)
		assert.Equal(t, p.src.Cmp(p.dst), 0, p.name)
		assert.Check(t, p.src != p.dst, "%s aliases the source", p.name)
	}
}

func TestDuplicateFidelityDSA(t *testing.T) {
	k := decodeFixture(t, "dsa.pem")

	d, err := Duplicate(k, false)
	assert.NilError(t, err)
	assert.Equal(t, d.Family(), DSA)
	assert.Equal(t, d.Flags(), k.Flags())

	pairs := []struct {
		name     string
		src, dst *big.Int
	}{
		{"P", k.DSA().P, d.DSA().P},
		{"Q", k.DSA().Q, d.DSA().Q},
		{"G", k.DSA().G, d.DSA().G},
		{"Y", k.DSA().Y, d.DSA().Y},
		{"X", k.DSA().X, d.DSA().X},
	}
	for _, p := range pairs {
		assert.Assert(t, p.dst != nil, p.name)
		assert.Equal(t, p.src.Cmp(p.dst), 0, p.name)
		assert.Check(t, p.src != p.dst, "%s aliases the source", p.name)
	}
}

func TestDuplicateDemote(t *testing.T) {
	for _, name := range []string{"rsa.pem", "dsa.pem"} {
		k := decodeFixture(t, name)

		d, err := Duplicate(k, true)
		assert.NilError(t, err, name)
		assert.Equal(t, d.Flags(), FlagPublic, name)
		assert.Check(t, !d.IsPrivate(), name)

		switch d.Family() {
		case RSA:
			assert.Check(t, d.RSA().D == nil, "demoted key kept private exponent")
			assert.Check(t, d.RSA().P == nil, "demoted key kept prime p")
		case DSA:
			assert.Check(t, d.DSA().X == nil, "demoted key kept private exponent")
		}
	}
}

func TestDuplicateDemoteIsIdempotent(t *testing.T) {
	k := decodeFixture(t, "rsa.pem")
	pub, err := Duplicate(k, true)
	assert.NilError(t, err)

	again, err := Duplicate(pub, true)
	assert.NilError(t, err)
	assert.Equal(t, again.Flags(), FlagPublic)

	// Copying a public-only key without demoting stays public-only.
	copied, err := Duplicate(pub, false)
	assert.NilError(t, err)
	assert.Equal(t, copied.Flags(), FlagPublic)
}

func TestDuplicateUnsupported(t *testing.T) {
	_, err := Duplicate(&Key{}, false)
	assert.Check(t, errors.Is(err, ErrUnsupportedAlgorithm))

	_, err = Duplicate(&Key{}, true)
	assert.Check(t, errors.Is(err, ErrUnsupportedAlgorithm))
}

func TestDuplicateIncompleteKey(t *testing.T) {
	k := decodeFixture(t, "rsa.pem")
	k.rsa.D = nil // claims FlagPrivate but the secret is gone

	_, err := Duplicate(k, false)
	assert.Check(t, errors.Is(err, ErrIncompleteKey))

	// Demotion never needs the secret half.
	pub, err := Duplicate(k, true)
	assert.NilError(t, err)
	assert.Equal(t, pub.Flags(), FlagPublic)
}
