package pki

import (
	"bytes"
	"fmt"
	"math/big"

	"skiff.network/skiff/wire"
)

// EncodePublicKey serializes the public half of k into the protocol's key
// blob: the type name followed by the family's public fields in fixed
// order, each length-prefixed. Secret fields are never read. No partial
// blob is returned on failure.
func EncodePublicKey(k *Key) ([]byte, error) {
	var fields []*big.Int
	switch k.family {
	case RSA:
		if k.rsa == nil {
			return nil, fmt.Errorf("%w: no RSA components", ErrEncoding)
		}
		fields = []*big.Int{k.rsa.E, k.rsa.N}
	case DSA:
		if k.dsa == nil {
			return nil, fmt.Errorf("%w: no DSA components", ErrEncoding)
		}
		fields = []*big.Int{k.dsa.P, k.dsa.Q, k.dsa.G, k.dsa.Y}
	default:
		return nil, fmt.Errorf("%w: cannot encode %s key", ErrUnsupportedAlgorithm, k.family)
	}

	buf := bytes.Buffer{}
	if _, err := wire.WriteString(k.TypeName(), &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	for _, f := range fields {
		if f == nil {
			return nil, fmt.Errorf("%w: missing public field", ErrEncoding)
		}
		if _, err := wire.WriteBignum(f, &buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
	}
	return buf.Bytes(), nil
}
