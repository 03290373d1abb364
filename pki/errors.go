package pki

import "errors"

// Error kinds returned by this package. Every failure wraps one of these
// sentinels, so callers classify with errors.Is; diagnostic text from the
// underlying crypto backend rides along in the message and is meant for
// logging only.
var (
	ErrUnrecognizedFormat   = errors.New("pki: unrecognized private key format")
	ErrUnsupportedAlgorithm = errors.New("pki: unsupported key algorithm")
	ErrMalformedField       = errors.New("pki: malformed key field")
	ErrDecryption           = errors.New("pki: private key decode failed")
	ErrMissingPrivate       = errors.New("pki: operation requires a private key")
	ErrSigning              = errors.New("pki: signing failed")
	ErrEncoding             = errors.New("pki: public key encoding failed")
	ErrIncompleteKey        = errors.New("pki: key is missing a required field")
)
