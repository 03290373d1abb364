package pki

import (
	"crypto/dsa"
	"crypto/rsa"
	"encoding/pem"
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"

	"skiff.network/skiff/dialogue"
)

// PassphrasePrompt is the prompt handed to passphrase providers.
const PassphrasePrompt = "Passphrase for private key:"

// MaxPassphraseLen bounds the buffer handed to a passphrase provider.
const MaxPassphraseLen = 256

// PassphraseFunc supplies the secret protecting an encrypted private key
// block. The provider writes at most len(buf) bytes into buf and returns
// the count; returning 0 with a nil error means "no passphrase", which is
// the right answer for unencrypted blocks. A non-nil error means entry was
// cancelled or failed. The provider must not retain buf after returning.
type PassphraseFunc func(prompt string, buf []byte, echo, verify bool) (int, error)

// DecodePrivateKey parses a PEM private key block. The passphrase for
// encrypted blocks is resolved in order: the passphrase argument if
// non-nil, then the prompt callback, then an interactive read from the
// controlling terminal. The interactive paths block until the user answers,
// so latency-sensitive callers should pass the passphrase directly.
//
// Decoding a private key always yields both halves, so the result carries
// FlagPublic|FlagPrivate. The key type is classified from the PEM header
// before any decryption is attempted; no passphrase mechanism runs for an
// unrecognized block.
func DecodePrivateKey(encoded, passphrase []byte, prompt PassphraseFunc) (*Key, error) {
	block, _ := pem.Decode(encoded)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrUnrecognizedFormat)
	}
	family := familyFromPEMType(block.Type)
	if family == Unknown {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, block.Type)
	}
	encrypted := block.Headers["Proc-Type"] == "4,ENCRYPTED"

	var secret []byte
	switch {
	case passphrase != nil:
		secret = passphrase
	case encrypted && prompt != nil:
		logrus.Debug("requesting private key passphrase from callback")
		buf := make([]byte, MaxPassphraseLen)
		defer wipeBytes(buf)
		n, err := prompt(PassphrasePrompt, buf, false, false)
		if err != nil {
			return nil, fmt.Errorf("%w: passphrase entry: %v", ErrDecryption, err)
		}
		if n < 0 || n > len(buf) {
			return nil, fmt.Errorf("%w: passphrase callback returned invalid length %d", ErrDecryption, n)
		}
		secret = buf[:n]
	case encrypted:
		// No passphrase and no callback. The decode backend has no prompt
		// of its own, so ask on the controlling terminal.
		buf := make([]byte, MaxPassphraseLen)
		defer wipeBytes(buf)
		n, err := dialogue.Passphrase(PassphrasePrompt, buf, false, false)
		if err != nil {
			return nil, fmt.Errorf("%w: passphrase entry: %v", ErrDecryption, err)
		}
		secret = buf[:n]
	}

	var (
		raw interface{}
		err error
	)
	if encrypted && len(secret) > 0 {
		raw, err = ssh.ParseRawPrivateKeyWithPassphrase(encoded, secret)
	} else {
		// The backend rejects passphrases for blocks that are not
		// protected, so any supplied value is ignored here.
		raw, err = ssh.ParseRawPrivateKey(encoded)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	key, err := keyFromBackend(raw)
	if err != nil {
		return nil, err
	}
	if key.family != family {
		key.Destroy()
		return nil, fmt.Errorf("%w: header says %s, body decodes as %s", ErrDecryption, family, key.family)
	}
	return key, nil
}

func familyFromPEMType(pemType string) Family {
	switch pemType {
	case "RSA PRIVATE KEY":
		return RSA
	case "DSA PRIVATE KEY":
		return DSA
	}
	return Unknown
}

// keyFromBackend copies a decoded stdlib private key into an owned Key; the
// backend's value does not alias the result.
func keyFromBackend(raw interface{}) (*Key, error) {
	switch p := raw.(type) {
	case *rsa.PrivateKey:
		c := &RSAComponents{
			N: new(big.Int).Set(p.N),
			E: big.NewInt(int64(p.E)),
			D: new(big.Int).Set(p.D),
		}
		if len(p.Primes) == 2 {
			c.P = new(big.Int).Set(p.Primes[0])
			c.Q = new(big.Int).Set(p.Primes[1])
		}
		if p.Precomputed.Dp != nil && p.Precomputed.Dq != nil && p.Precomputed.Qinv != nil {
			c.Dp = new(big.Int).Set(p.Precomputed.Dp)
			c.Dq = new(big.Int).Set(p.Precomputed.Dq)
			c.Qinv = new(big.Int).Set(p.Precomputed.Qinv)
		}
		return &Key{family: RSA, flags: FlagPublic | FlagPrivate, rsa: c}, nil
	case *dsa.PrivateKey:
		c := &DSAComponents{
			P: new(big.Int).Set(p.P),
			Q: new(big.Int).Set(p.Q),
			G: new(big.Int).Set(p.G),
			Y: new(big.Int).Set(p.Y),
			X: new(big.Int).Set(p.X),
		}
		return &Key{family: DSA, flags: FlagPublic | FlagPrivate, dsa: c}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedAlgorithm, raw)
}
