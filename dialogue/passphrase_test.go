package dialogue

import (
	"testing"

	"gotest.tools/assert"
)

func TestPassphraseRequiresTerminal(t *testing.T) {
	// go test runs without a controlling terminal on stdin.
	buf := make([]byte, 32)
	_, err := Passphrase("Passphrase:", buf, false, false)
	assert.ErrorContains(t, err, "not a terminal")
}
